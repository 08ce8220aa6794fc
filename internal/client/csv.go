package client

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVPreview is the confirmation view shown before a bulk upload is
// committed: the header plus the first few data rows.
type CSVPreview struct {
	Header    []string
	Rows      [][]string
	TotalRows int
}

const previewRows = 5

// PreviewCSV parses the whole file locally but keeps only the first five
// rows for display. Nothing is sent until the user confirms.
func PreviewCSV(r io.Reader) (*CSVPreview, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	preview := &CSVPreview{Header: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", preview.TotalRows+2, err)
		}
		preview.TotalRows++
		if len(preview.Rows) < previewRows {
			preview.Rows = append(preview.Rows, record)
		}
	}
	return preview, nil
}
