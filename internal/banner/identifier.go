package banner

import "strings"

// Identify guesses the service name and version from a raw banner.
func Identify(raw string) (service, version string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "nginx"):
		return "nginx", extractVersion(raw, "nginx/")
	case strings.Contains(lower, "apache"):
		return "apache", extractVersion(raw, "Apache/")
	case strings.Contains(lower, "microsoft-iis"):
		return "iis", extractVersion(raw, "Microsoft-IIS/")
	case strings.Contains(lower, "openssh"):
		// "OpenSSH_8.9p1" → "OpenSSH/8.9p1"
		if v := extractVersion(raw, "OpenSSH_"); v != "" {
			return "ssh", "OpenSSH/" + v
		}
		return "ssh", ""
	case strings.HasPrefix(raw, "SSH-"):
		return "ssh", ""
	case strings.HasPrefix(raw, "220") && strings.Contains(lower, "ftp"):
		return "ftp", ""
	case strings.HasPrefix(raw, "220") && strings.Contains(lower, "postfix"):
		return "smtp", "postfix"
	case strings.HasPrefix(raw, "220") && strings.Contains(lower, "smtp"):
		return "smtp", ""
	case strings.HasPrefix(raw, "-ERR") || strings.HasPrefix(raw, "+PONG"):
		return "redis", ""
	case strings.Contains(lower, "mysql") || strings.Contains(lower, "mariadb"):
		return "mysql", ""
	case strings.HasPrefix(raw, "HTTP/"):
		return "http", extractVersion(raw, "Server: ")
	}

	if parts := strings.Fields(raw); len(parts) > 0 {
		service = strings.ToLower(parts[0])
	}
	return service, ""
}

// ─── helper ───────────────────────────────────────────────────────────────────

// extractVersion returns the token following prefix in raw.
// Example: "nginx/1.18.0" with prefix "nginx/" → "1.18.0".
func extractVersion(raw, prefix string) string {
	idx := indexFold(raw, prefix)
	if idx == -1 {
		return ""
	}
	rest := raw[idx+len(prefix):]
	if end := strings.IndexAny(rest, " \t\n\r()"); end != -1 {
		return rest[:end]
	}
	return rest
}

// indexFold is a case-insensitive strings.Index whose offset is valid in s.
// Lowercasing s first is not: invalid bytes and some runes change length.
func indexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}
