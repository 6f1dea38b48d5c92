package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"masjid/internal/orgchart"
)

// Header labels accepted for each roster column, lower-cased.
var (
	nameHeaders  = []string{"name", "nama"}
	roleHeaders  = []string{"role", "jabatan"}
	imageHeaders = []string{"imageurl", "image", "foto"}
)

var errNoHeader = errors.New("roster header must have name and role columns")

func readRosterFile(path string) ([]orgchart.StaffRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return readCSV(f)
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return readJSON(f)
	default:
		return nil, fmt.Errorf("unsupported roster file %q (want .xlsx, .csv or .json)", path)
	}
}

// readXLSX reads the first sheet; the first row is the header.
func readXLSX(path string) ([]orgchart.StaffRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read first sheet: %w", err)
	}
	return recordsFromRows(rows)
}

func readCSV(r io.Reader) ([]orgchart.StaffRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return recordsFromRows(rows)
}

func readJSON(r io.Reader) ([]orgchart.StaffRecord, error) {
	var records []orgchart.StaffRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode json roster: %w", err)
	}
	return records, nil
}

// recordsFromRows maps rows to records by header name. Fully blank rows are
// skipped; rows with only some cells filled are kept in order.
func recordsFromRows(rows [][]string) ([]orgchart.StaffRecord, error) {
	if len(rows) == 0 {
		return nil, errNoHeader
	}
	nameCol := findColumn(rows[0], nameHeaders)
	roleCol := findColumn(rows[0], roleHeaders)
	imageCol := findColumn(rows[0], imageHeaders)
	if nameCol < 0 || roleCol < 0 {
		return nil, errNoHeader
	}

	records := make([]orgchart.StaffRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := orgchart.StaffRecord{
			Name:     cell(row, nameCol),
			Role:     cell(row, roleCol),
			ImageURL: cell(row, imageCol),
		}
		if rec.Name == "" && rec.Role == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func findColumn(header []string, labels []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, l := range labels {
			if h == l {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
