package tables

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/log"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Format is a supported table file format.
type Format string

// Supported table file formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var extensions = []struct {
	ext    string
	format Format
}{
	{".json", JSON},
	{".yaml", YAML},
	{".yml", YAML},
}

// Table file base names inside a table directory.
const (
	CharsetName = "charset"
	SpeciesName = "species"
	MovesName   = "moves"
	TypesName   = "types"
	ItemsName   = "items"
)

// Load reads all tables of a directory. A table without a file in the
// directory is left empty.
func Load(logger *log.Logger, dir string) (*Set, error) {
	set := NewSet()
	targets := []struct {
		name  string
		table *Table
	}{
		{CharsetName, &set.Charset},
		{SpeciesName, &set.Species},
		{MovesName, &set.Moves},
		{TypesName, &set.Types},
		{ItemsName, &set.Items},
	}

	for _, target := range targets {
		path, format, ok := findTableFile(dir, target.name)
		if !ok {
			logger.Debug("Table file not found, using empty table",
				log.String("table", target.name),
				log.String("dir", dir))
			continue
		}

		table, err := LoadFile(path, format)
		if err != nil {
			return nil, err
		}
		*target.table = table

		logger.Debug("Loaded table",
			log.String("table", target.name),
			log.String("file", path),
			log.Int("entries", len(table)))
	}
	return set, nil
}

func findTableFile(dir, name string) (string, Format, bool) {
	for _, e := range extensions {
		path := filepath.Join(dir, name+e.ext)
		if _, err := os.Stat(path); err == nil {
			return path, e.format, true
		}
	}
	return "", "", false
}

// LoadFile reads a single table file.
func LoadFile(path string, format Format) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table file '%s': %w", path, err)
	}

	table, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing table file '%s': %w", path, err)
	}
	return table, nil
}

// Parse parses table data of the given format. The data has to be a single
// mapping of integer code strings to names.
func Parse(data []byte, format Format) (Table, error) {
	var (
		values map[string]string
		err    error
	)

	switch format {
	case JSON:
		values, err = parseJSON(data)
	case YAML:
		values, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported table format '%s'", format)
	}
	if err != nil {
		return nil, err
	}
	return FromStrings(values)
}

func parseJSON(data []byte) (map[string]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("expected object but got %s", root.Type)
	}

	values := make(map[string]string)
	root.ForEach(func(key, value gjson.Result) bool {
		values[key.String()] = value.String()
		return true
	})
	return values, nil
}

func parseYAML(data []byte) (map[string]string, error) {
	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return values, nil
}
