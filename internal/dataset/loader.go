package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Columns names the source header for each Record field.
type Columns struct {
	Region    string
	Active    string
	Deceased  string
	Recovered string
}

// DefaultColumns matches the headers of the published district case table.
func DefaultColumns() Columns {
	return Columns{
		Region:    "District",
		Active:    "Active",
		Deceased:  "Deceased",
		Recovered: "Recovered",
	}
}

func (c Columns) withDefaults() Columns {
	def := DefaultColumns()
	if c.Region == "" {
		c.Region = def.Region
	}
	if c.Active == "" {
		c.Active = def.Active
	}
	if c.Deceased == "" {
		c.Deceased = def.Deceased
	}
	if c.Recovered == "" {
		c.Recovered = def.Recovered
	}
	return c
}

// Source describes where the dataset comes from.
type Source struct {
	Path    string
	Sheet   string // xlsx only; empty selects the first sheet
	Columns Columns
}

// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Load reads the source file, choosing the parser by extension.
func Load(src Source) (*Dataset, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(src.Path)) {
	case ".csv":
		return ReadCSV(f, src.Columns)
	case ".xlsx":
		return ReadXLSX(f, src.Sheet, src.Columns)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, src.Path)
	}
}

// ReadCSV parses a CSV table with a header row.
func ReadCSV(r io.Reader, cols Columns) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Extra columns in the source are ignored, so rows may differ in width.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	p, err := newRowParser(header, cols)
	if err != nil {
		return nil, err
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV line %d: %w", line, err)
		}
		if blank(row) {
			continue
		}
		rec, err := p.parse(row)
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return New(records)
}

// rowParser maps a header row to field positions.
type rowParser struct {
	region, active, deceased, recovered int
}

func newRowParser(header []string, cols Columns) (*rowParser, error) {
	cols = cols.withDefaults()
	positions := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := positions[key]; !dup {
			positions[key] = i
		}
	}
	find := func(name string) (int, error) {
		i, ok := positions[strings.ToLower(name)]
		if !ok {
			return 0, fmt.Errorf("missing column %q", name)
		}
		return i, nil
	}

	var (
		p   rowParser
		err error
	)
	if p.region, err = find(cols.Region); err != nil {
		return nil, err
	}
	if p.active, err = find(cols.Active); err != nil {
		return nil, err
	}
	if p.deceased, err = find(cols.Deceased); err != nil {
		return nil, err
	}
	if p.recovered, err = find(cols.Recovered); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *rowParser) parse(row []string) (Record, error) {
	var (
		rec Record
		err error
	)
	rec.Region = cell(row, p.region)
	if rec.Active, err = parseCount(cell(row, p.active)); err != nil {
		return Record{}, fmt.Errorf("active: %w", err)
	}
	if rec.Deceased, err = parseCount(cell(row, p.deceased)); err != nil {
		return Record{}, fmt.Errorf("deceased: %w", err)
	}
	if rec.Recovered, err = parseCount(cell(row, p.recovered)); err != nil {
		return Record{}, fmt.Errorf("recovered: %w", err)
	}
	return rec, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseCount accepts plain integers, thousands separators and integral floats
// such as "12.0" which spreadsheet exports tend to produce. Empty cells are zero.
func parseCount(s string) (int64, error) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	return int64(f), nil
}
