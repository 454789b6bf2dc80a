package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/MMIthomas/SAE303/internal/logging"
)

// Load reads and decodes the export document at path.
func Load(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read dataset %s: %w", path, err)
	}
	doc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to parse dataset %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes an export document from raw JSON.
func Parse(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Table returns the first section typed "table", or nil when there is none.
func (d Document) Table() *Section {
	for i := range d {
		if d[i].Type == TableSectionType {
			return &d[i]
		}
	}
	return nil
}

// Results decodes the section's rows. A section without data yields an
// empty slice. Rows that are not objects, or whose text fields hold other
// JSON types, are skipped; the remaining rows are kept. Missing numeric
// fields decode to NaN.
func (s *Section) Results() ([]Result, error) {
	if s == nil || len(s.Data) == 0 || string(s.Data) == "null" {
		return []Result{}, nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(s.Data, &rows); err != nil {
		return nil, fmt.Errorf("decode %s section %q: %w", s.Type, s.Name, err)
	}
	results := make([]Result, 0, len(rows))
	for i, row := range rows {
		trimmed := bytes.TrimSpace(row)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			logging.Debug("skipping row that is not an object", "section", s.Name, "row", i)
			continue
		}
		r := Result{Time: Number(math.NaN()), NbVariables: Number(math.NaN())}
		if err := json.Unmarshal(trimmed, &r); err != nil {
			logging.Debug("skipping undecodable row", "section", s.Name, "row", i, "error", err)
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

// TableResults returns the rows of the document's table section. A
// document without a table section, or whose data is not an array, yields
// an empty slice.
func TableResults(d Document) []Result {
	results, err := d.Table().Results()
	if err != nil {
		logging.Debug("table section ignored", "error", err)
		return []Result{}
	}
	return results
}

// SourceName describes where the rows came from ("database.table"), or ""
// when the document carries no table metadata.
func (d Document) SourceName() string {
	table := d.Table()
	if table == nil || table.Name == "" {
		return ""
	}
	if table.Database == "" {
		return table.Name
	}
	return table.Database + "." + table.Name
}
