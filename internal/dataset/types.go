// internal/dataset/types.go
// Package dataset loads the benchmark export and exposes its result table.
package dataset

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// TableSectionType is the discriminant of the section holding the result rows.
const TableSectionType = "table"

// Status values a solver run can report.
const (
	StatusSAT     = "SAT"
	StatusUNSAT   = "UNSAT"
	StatusUNKNOWN = "UNKNOWN"
)

// Section is one typed entry of the exported document. Only the table
// section carries result rows; the others (header, database) are kept for
// their metadata.
type Section struct {
	Type     string          `json:"type"`
	Name     string          `json:"name,omitempty"`
	Database string          `json:"database,omitempty"`
	Version  string          `json:"version,omitempty"`
	Comment  string          `json:"comment,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Document is the whole export: an ordered list of typed sections.
type Document []Section

// Result is one solver run on one problem instance.
type Result struct {
	Name        string `json:"name"`
	Family      string `json:"family"`
	Status      string `json:"status"`
	Time        Number `json:"time"`
	NbVariables Number `json:"nb_variables"`
}

// Number is a float that decodes from either a JSON number or a numeric
// string. Values that cannot be parsed decode to NaN, which never passes a
// timing or size filter.
type Number float64

// Float returns the value as a float64.
func (n Number) Float() float64 { return float64(n) }

// UnmarshalJSON accepts numbers, numeric strings and null. Any other
// token, and literals outside the float64 range, decode to NaN.
func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		*n = Number(math.NaN())
		return nil
	}
	switch c := trimmed[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*n = ParseNumber(s)
	case c == '-' || (c >= '0' && c <= '9'):
		*n = finite(strconv.ParseFloat(string(trimmed), 64))
	default:
		*n = Number(math.NaN())
	}
	return nil
}

// MarshalJSON writes NaN and infinities as null.
func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
}

// ParseNumber parses the leading decimal number of s the way a lenient
// float parser does ("12.5s" -> 12.5). Anything without a numeric prefix,
// including "inf" and "NaN", yields NaN, as do values that overflow.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	end := numericPrefix(s)
	if end == 0 {
		return Number(math.NaN())
	}
	return finite(strconv.ParseFloat(s[:end], 64))
}

// finite turns a parse failure or an infinite value into NaN.
func finite(v float64, err error) Number {
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return Number(math.NaN())
	}
	return Number(v)
}

// numericPrefix returns the length of the longest prefix of s shaped like
// [+-]digits[.digits][e[+-]digits].
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	if s[i-1] == '.' {
		i--
	}
	return i
}
