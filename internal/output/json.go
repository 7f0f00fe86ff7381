package output

import (
	"encoding/json"
	"io"
	"os"
)

// ─── json ─────────────────────────────────────────────────────────────────────

// PrintJSON writes one indented JSON object for a single result.
func PrintJSON(w io.Writer, result Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteJSON saves all results to path as a JSON array.
func WriteJSON(path string, results []Result) error {
	if results == nil {
		results = []Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
