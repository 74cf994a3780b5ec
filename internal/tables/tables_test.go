package tables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLookup(t *testing.T) {
	table := Table{0x01: "BULBASAUR", 153: "RHYDON"}

	assert.Equal(t, "BULBASAUR", table.Lookup(1))
	assert.Equal(t, "RHYDON", table.Lookup(153))
	assert.Equal(t, "Unknown(0)", table.Lookup(0))
	assert.Equal(t, "Unknown(255)", table.Lookup(0xFF))

	name, ok := table.Get(153)
	assert.True(t, ok)
	assert.Equal(t, "RHYDON", name)

	_, ok = table.Get(2)
	assert.False(t, ok)
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		key     string
		want    int
		wantErr bool
	}{
		{key: "0x50", want: 0x50},
		{key: "0X7F", want: 0x7F},
		{key: "80", want: 80},
		{key: " 12 ", want: 12},
		{key: "0b101", want: 5},
		{key: "0o17", want: 15},
		{key: "0", want: 0},
		{key: "abc", wantErr: true},
		{key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseCode(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		table, err := Parse([]byte(`{"0x80": "A", "129": "B", "0xBA": "é"}`), JSON)
		assert.NoError(t, err)
		assert.Equal(t, Table{0x80: "A", 129: "B", 0xBA: "é"}, table)
	})

	t.Run("yaml", func(t *testing.T) {
		table, err := Parse([]byte("\"0x01\": POUND\n2: KARATE CHOP\n"), YAML)
		assert.NoError(t, err)
		assert.Equal(t, Table{1: "POUND", 2: "KARATE CHOP"}, table)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Parse([]byte(`{"0x01": `), JSON)
		assert.ErrorContains(t, err, "invalid JSON")
	})

	t.Run("json array", func(t *testing.T) {
		_, err := Parse([]byte(`["A"]`), JSON)
		assert.ErrorContains(t, err, "expected object")
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := Parse([]byte(`{"one": "A"}`), JSON)
		assert.ErrorContains(t, err, "invalid table key 'one'")
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := Parse([]byte(`{}`), Format("xml"))
		assert.ErrorContains(t, err, "unsupported table format")
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charset.json", `{"0x80": "A", "0x81": "B"}`)
	writeFile(t, dir, "moves.yaml", "\"0x21\": TACKLE\n")
	writeFile(t, dir, "items.yml", "\"0x04\": POKé BALL\n")

	set, err := Load(log.NewTestLogger(t), dir)
	assert.NoError(t, err)
	assert.Equal(t, Table{0x80: "A", 0x81: "B"}, set.Charset)
	assert.Equal(t, Table{0x21: "TACKLE"}, set.Moves)
	assert.Equal(t, Table{0x04: "POKé BALL"}, set.Items)
	assert.Len(t, set.Species, 0)
	assert.Len(t, set.Types, 0)
	assert.NotNil(t, set.Species)

	t.Run("missing directory", func(t *testing.T) {
		set, err := Load(log.NewTestLogger(t), filepath.Join(dir, "missing"))
		assert.NoError(t, err)
		assert.Len(t, set.Charset, 0)
	})

	t.Run("broken file", func(t *testing.T) {
		broken := t.TempDir()
		writeFile(t, broken, "types.json", `{"x": "NORMAL"}`)

		_, err := Load(log.NewTestLogger(t), broken)
		assert.ErrorContains(t, err, "types.json")
	})
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}
