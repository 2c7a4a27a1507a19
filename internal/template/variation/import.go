package variation

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/pagegen/internal/debug"
	"github.com/tacogips/pagegen/internal/template/model"
)

// Format identifies a tabular import format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the import format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", newTableError(UnsupportedFormat,
			fmt.Sprintf("cannot infer row format from %q (supported: csv, tsv, json, yaml, toml)", path), -1, nil)
	}
}

// LoadFile reads rows from path, choosing the decoder by extension.
func LoadFile(path string) ([]*model.Row, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, newTableError(ImportFailed, "failed to open rows file "+path, -1, err)
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads rows from r in the given format.
//
// CSV and TSV use the first record as the header of tag names; an empty cell
// leaves the tag without a value. JSON and YAML expect a list of objects.
// TOML expects an array of tables named "rows". Non-string scalars are
// converted to their textual form.
func Decode(r io.Reader, format Format) ([]*model.Row, error) {
	debug.Debug("[variation] Decode: format=%s", format)

	switch format {
	case FormatCSV:
		return decodeDelimited(r, ',')
	case FormatTSV:
		return decodeDelimited(r, '\t')
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	case FormatTOML:
		return decodeTOML(r)
	default:
		return nil, newTableError(UnsupportedFormat, fmt.Sprintf("unsupported row format %q", format), -1, nil)
	}
}

func decodeDelimited(r io.Reader, comma rune) ([]*model.Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []*model.Row{}, nil
	}
	if err != nil {
		return nil, newTableError(ImportFailed, "failed to read header", -1, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows := []*model.Row{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newTableError(ImportFailed, "failed to read record", len(rows), err)
		}
		if isBlankRecord(record) {
			continue
		}

		row := model.NewRow(nil)
		for i, cell := range record {
			if i >= len(header) || header[i] == "" || cell == "" {
				continue
			}
			row.Set(header[i], cell)
		}
		rows = append(rows, row)
	}

	debug.Debug("[variation] decodeDelimited: %d column(s), %d row(s)", len(header), len(rows))
	return rows, nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func decodeJSON(r io.Reader) ([]*model.Row, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []map[string]interface{}
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []*model.Row{}, nil
		}
		return nil, newTableError(ImportFailed, "invalid JSON rows (expected an array of objects)", -1, err)
	}
	return rowsFromRecords(records), nil
}

func decodeYAML(r io.Reader) ([]*model.Row, error) {
	var records []map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []*model.Row{}, nil
		}
		return nil, newTableError(ImportFailed, "invalid YAML rows (expected a sequence of mappings)", -1, err)
	}
	return rowsFromRecords(records), nil
}

type tomlRows struct {
	Rows []map[string]interface{} `toml:"rows"`
}

func decodeTOML(r io.Reader) ([]*model.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newTableError(ImportFailed, "failed to read TOML rows", -1, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []*model.Row{}, nil
	}

	var doc tomlRows
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, newTableError(ImportFailed, "invalid TOML rows (expected [[rows]] tables)", -1, err)
	}
	return rowsFromRecords(doc.Rows), nil
}

func rowsFromRecords(records []map[string]interface{}) []*model.Row {
	rows := make([]*model.Row, 0, len(records))
	for _, rec := range records {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		row := model.NewRow(nil)
		for _, k := range keys {
			if rec[k] == nil {
				continue
			}
			row.Set(k, stringify(rec[k]))
		}
		rows = append(rows, row)
	}
	return rows
}

func stringify(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
