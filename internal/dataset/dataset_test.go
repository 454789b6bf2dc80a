package dataset

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `[
  {"type":"header","version":"5.2.1","comment":"Export to JSON plugin for PHPMyAdmin"},
  {"type":"database","name":"sae303"},
  {"type":"table","name":"results","database":"sae303","data":[
    {"id":"1","name":"ACE","family":"Queens","status":"SAT","time":"1.5","nb_variables":"8"},
    {"id":"2","name":"Choco","family":"Queens","status":"UNKNOWN","time":"10000","nb_variables":"8"},
    {"id":"3","name":"Picat","family":"Rcpsp","status":"UNSAT","time":2.25,"nb_variables":120}
  ]}
]`

func TestParseAndTableResults(t *testing.T) {
	doc, err := Parse([]byte(sampleExport))
	require.NoError(t, err)
	require.Len(t, doc, 3)

	results := TableResults(doc)
	require.Len(t, results, 3)
	assert.Equal(t, "ACE", results[0].Name)
	assert.Equal(t, "Queens", results[0].Family)
	assert.Equal(t, StatusSAT, results[0].Status)
	assert.InDelta(t, 1.5, results[0].Time.Float(), 1e-9)
	assert.InDelta(t, 8, results[0].NbVariables.Float(), 1e-9)
	assert.InDelta(t, 2.25, results[2].Time.Float(), 1e-9)
	assert.Equal(t, "sae303.results", doc.SourceName())
}

func TestTableResultsWithoutTableSection(t *testing.T) {
	doc, err := Parse([]byte(`[{"type":"header"},{"type":"database","name":"x"}]`))
	require.NoError(t, err)

	results := TableResults(doc)
	assert.NotNil(t, results)
	assert.Empty(t, results)
	assert.Nil(t, doc.Table())
	assert.Equal(t, "", doc.SourceName())
}

func TestTableResultsFirstTableWins(t *testing.T) {
	doc, err := Parse([]byte(`[
	  {"type":"table","name":"first","data":[{"name":"A","status":"SAT","time":"1"}]},
	  {"type":"table","name":"second","data":[{"name":"B","status":"SAT","time":"1"},{"name":"C"}]}
	]`))
	require.NoError(t, err)

	results := TableResults(doc)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Name)
}

func TestTableResultsDataNotAnArray(t *testing.T) {
	doc, err := Parse([]byte(`[{"type":"table","data":"oops"}]`))
	require.NoError(t, err)
	assert.Empty(t, TableResults(doc))
}

func TestTableResultsKeepsValidRowsBesideBadOnes(t *testing.T) {
	valid := `{"name":"A","status":"SAT","time":"1.5"}`
	tests := []struct {
		name     string
		bad      string
		wantRows int
		badTime  bool
	}{
		{name: "numeric name", bad: `{"name":7,"status":"SAT","time":"2"}`, wantRows: 1},
		{name: "boolean time", bad: `{"name":"B","status":"SAT","time":true}`, wantRows: 2, badTime: true},
		{name: "overflowing time", bad: `{"name":"B","status":"SAT","time":1e400}`, wantRows: 2, badTime: true},
		{name: "object time", bad: `{"name":"B","status":"SAT","time":{"s":1}}`, wantRows: 2, badTime: true},
		{name: "row not an object", bad: `"B"`, wantRows: 1},
		{name: "null row", bad: `null`, wantRows: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(`[{"type":"table","data":[` + valid + `,` + tt.bad + `]}]`))
			require.NoError(t, err)

			results := TableResults(doc)
			require.Len(t, results, tt.wantRows)
			assert.Equal(t, "A", results[0].Name)
			assert.InDelta(t, 1.5, results[0].Time.Float(), 1e-9)
			if tt.badTime {
				assert.Equal(t, "B", results[1].Name)
				assert.True(t, math.IsNaN(results[1].Time.Float()), "got %v", results[1].Time)
			}
		})
	}
}

func TestTableResultsMissingNumbersAreNaN(t *testing.T) {
	doc, err := Parse([]byte(`[{"type":"table","data":[{"name":"A","status":"SAT"}]}]`))
	require.NoError(t, err)

	results := TableResults(doc)
	require.Len(t, results, 1)
	assert.True(t, math.IsNaN(results[0].Time.Float()))
	assert.True(t, math.IsNaN(results[0].NbVariables.Float()))
}

func TestNumberDecoding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		isNaN bool
	}{
		{name: "numeric string", input: `"12.5"`, want: 12.5},
		{name: "number", input: `3`, want: 3},
		{name: "padded string", input: `" 7 "`, want: 7},
		{name: "suffix ignored", input: `"12.5s"`, want: 12.5},
		{name: "exponent", input: `"1e3"`, want: 1000},
		{name: "empty string", input: `""`, isNaN: true},
		{name: "null", input: `null`, isNaN: true},
		{name: "text", input: `"timeout"`, isNaN: true},
		{name: "boolean", input: `true`, isNaN: true},
		{name: "array", input: `[1]`, isNaN: true},
		{name: "overflow literal", input: `1e400`, isNaN: true},
		{name: "overflow string", input: `"-1e400"`, isNaN: true},
		{name: "inf string", input: `"inf"`, isNaN: true},
		{name: "negative inf string", input: `"-inf"`, isNaN: true},
		{name: "infinity string", input: `"Infinity"`, isNaN: true},
		{name: "nan string", input: `"NaN"`, isNaN: true},
		{name: "hex string", input: `"0x10"`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			if tt.isNaN {
				assert.True(t, math.IsNaN(n.Float()), "expected NaN, got %v", n)
				return
			}
			assert.InDelta(t, tt.want, n.Float(), 1e-9)
		})
	}
}

func TestParseNumberIsAlwaysFiniteOrNaN(t *testing.T) {
	for _, in := range []string{"inf", "-inf", "+Inf", "Infinity", "-Infinity", "1e999", "-1e999"} {
		v := ParseNumber(in).Float()
		assert.True(t, math.IsNaN(v), "%q parsed to %v", in, v)
	}
	assert.InDelta(t, -3.5, ParseNumber("-3.5e0 s").Float(), 1e-9)
}

func TestNumberMarshal(t *testing.T) {
	data, err := json.Marshal([]Number{Number(1.5), Number(math.NaN())})
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, null]`, string(data))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, TableResults(doc), 3)

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"type":`), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate([]byte(sampleExport)))

	err := Validate([]byte(`[{"name":"no type"},{"type":"table","data":[{"name":1}]}]`))
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.GreaterOrEqual(t, len(verr.Problems), 2)

	err = Validate([]byte(`{"type":"table"}`))
	require.True(t, errors.As(err, &verr))
}
