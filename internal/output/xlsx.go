package output

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ─── xlsx ─────────────────────────────────────────────────────────────────────

const (
	DefaultXLSXPath = "port_scan_results.xlsx"
	sheetName       = "Ports"
)

// buildWorkbook lays results out on a single sheet with a bold header row.
func buildWorkbook(results []Result) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]any, len(tableHeader))
	for i, h := range tableHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(tableHeader), 1)
	if err := f.SetCellStyle(sheetName, "A1", last, bold); err != nil {
		f.Close()
		return nil, err
	}

	for i, row := range rows(results) {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		// port stays numeric so the sheet sorts properly
		if n, err := strconv.Atoi(row[0]); err == nil {
			cells[0] = n
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteXLSX saves the workbook to path, or DefaultXLSXPath when path is empty.
func WriteXLSX(path string, results []Result) error {
	if path == "" {
		path = DefaultXLSXPath
	}
	f, err := buildWorkbook(results)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save workbook %s: %w", path, err)
	}
	return nil
}
