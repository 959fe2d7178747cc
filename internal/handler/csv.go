package handler

import (
	"encoding/csv"
	"io"
	"strings"

	"stockroom/internal/dto"
	"stockroom/internal/service"
)

// readImportCSV parses an uploaded products CSV. Columns are mapped by header
// name, so order does not matter; unknown columns are ignored and missing
// ones read as empty strings.
func readImportCSV(r io.Reader) ([]dto.ImportRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	idx := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	field := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	rows := make([]dto.ImportRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, dto.ImportRow{
			Name:     field(rec, "name"),
			Unit:     field(rec, "unit"),
			Category: field(rec, "category"),
			Brand:    field(rec, "brand"),
			Stock:    field(rec, "stock"),
			Status:   field(rec, "status"),
			Image:    field(rec, "image"),
		})
	}
	return rows, nil
}

// writeExportCSV writes the header row followed by data rows in the fixed
// export column order.
func writeExportCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(service.ExportColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
