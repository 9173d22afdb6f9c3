package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExportSheet is the worksheet name used by WriteXLSX.
const ExportSheet = "Records"

// ReadXLSX parses the named worksheet (or the first one) of a workbook.
// The first non-empty row is the header.
func ReadXLSX(r io.Reader, sheet string, cols Columns) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var (
		p       *rowParser
		records []Record
	)
	for i, row := range rows {
		if blank(row) {
			continue
		}
		if p == nil {
			if p, err = newRowParser(row, cols); err != nil {
				return nil, fmt.Errorf("sheet %q: %w", sheet, err)
			}
			continue
		}
		rec, err := p.parse(row)
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", sheet, i+1, err)
		}
		records = append(records, rec)
	}
	if p == nil {
		return nil, fmt.Errorf("sheet %q: missing header row", sheet)
	}
	return New(records)
}

// WriteXLSX writes records as a single-sheet workbook whose header uses cols,
// so the output can be loaded back with the same configuration.
func WriteXLSX(w io.Writer, records []Record, cols Columns) error {
	cols = cols.withDefaults()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ExportSheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := []any{cols.Region, cols.Active, cols.Deceased, cols.Recovered}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range records {
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{rec.Region, rec.Active, rec.Deceased, rec.Recovered}
		if err := f.SetSheetRow(ExportSheet, addr, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
