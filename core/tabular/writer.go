package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a configuration value to a Format. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Sheet is an output table: a fixed header and rendered rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Write encodes the sheet in the given format.
func (s Sheet) Write(w io.Writer, format Format) error {
	if format == FormatXLSX {
		return s.WriteXLSX(w)
	}
	return s.WriteCSV(w)
}

// WriteCSV writes the header and rows as CSV with CRLF line endings.
func (s Sheet) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write(s.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(s.Rows); err != nil {
		return err
	}
	return writer.Error()
}

// WriteXLSX writes the header and rows as a single-sheet workbook.
func (s Sheet) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	name := s.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return err
	}

	if err := setRow(f, name, 1, s.Header); err != nil {
		return err
	}
	for i, row := range s.Rows {
		if err := setRow(f, name, i+2, row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, rowNo int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return f.SetSheetRow(sheet, cell, &values)
}
