package fileprocessor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrodump/internal/dump"
	"github.com/retroenv/retrodump/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/tidwall/gjson"
)

const testDump = `[
	["D347", "Money[1]", 0],
	["D348", "Money[2]", 1],
	["D349", "Money[3]", 0],
	["D5A4", "Casino Chips[1]", 0],
	["D5A5", "Casino Chips[2]", 16],
	["D158", "Trainer Name[1]", 80],
	["D159", "Trainer Name[2]", 80],
	["D15A", "Trainer Name[3]", 80],
	["D15B", "Trainer Name[4]", 80],
	["D15C", "Trainer Name[5]", 80],
	["D34A", "Rival Name[1]", 80],
	["D34B", "Rival Name[2]", 80],
	["D34C", "Rival Name[3]", 80],
	["D34D", "Rival Name[4]", 80],
	["D34E", "Rival Name[5]", 80],
	["D34F", "Rival Name[6]", 80],
	["D350", "Rival Name[7]", 80],
	["D351", "Rival Name[8]", 80]
]`

func createTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

func TestProcessFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()

	opts := options.Program{
		Parameters: options.Parameters{
			Input:  createTempFile(t, dir, "dump.json", testDump),
			Output: filepath.Join(dir, "dump.summary.json"),
			Tables: filepath.Join(dir, "dataset"),
		},
	}

	err := ProcessFile(context.Background(), logger, opts)
	assert.NoError(t, err)

	data, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	assert.True(t, gjson.ValidBytes(data))
	assert.Equal(t, int64(100), gjson.GetBytes(data, "money").Int())
	assert.Equal(t, int64(10), gjson.GetBytes(data, "casino_chips").Int())
	assert.Equal(t, "", gjson.GetBytes(data, "trainer.name").String())
}

func TestProcessFileErrors(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()

	t.Run("invalid output path", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{
				Input:  createTempFile(t, dir, "dump.json", testDump),
				Output: filepath.Join(dir, "missing", "out.json"),
			},
		}
		err := ProcessFile(context.Background(), logger, opts)
		assert.ErrorContains(t, err, "creating writer")
	})

	t.Run("existing output kept on decode failure", func(t *testing.T) {
		output := createTempFile(t, dir, "previous.summary.json", `{"previous":"summary"}`)
		opts := options.Program{
			Parameters: options.Parameters{
				Input:  createTempFile(t, dir, "partial.json", `[["D347", "Money[1]", 1]]`),
				Output: output,
			},
		}

		err := ProcessFile(context.Background(), logger, opts)
		assert.True(t, errors.Is(err, dump.ErrMissingAddress))

		data, err := os.ReadFile(output)
		assert.NoError(t, err)
		assert.Equal(t, `{"previous":"summary"}`, string(data))
	})

	t.Run("no output created on decode failure", func(t *testing.T) {
		output := filepath.Join(dir, "never.summary.json")
		opts := options.Program{
			Parameters: options.Parameters{
				Input:  createTempFile(t, dir, "partial.json", `[["D347", "Money[1]", 1]]`),
				Output: output,
			},
		}

		err := ProcessFile(context.Background(), logger, opts)
		assert.Error(t, err)

		_, err = os.Stat(output)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("cancelled", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{
				Input:  createTempFile(t, dir, "dump.json", testDump),
				Output: filepath.Join(dir, "out.json"),
			},
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := ProcessFile(ctx, logger, opts)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	createTempFile(t, dir, "a.json", testDump)
	createTempFile(t, dir, "b.json", testDump)
	createTempFile(t, dir, "notes.txt", "")
	createTempFile(t, dir, "a.summary.json", `{"money": 0}`)

	t.Run("single input", func(t *testing.T) {
		files, err := GetFilesToProcess(&options.Program{Parameters: options.Parameters{Input: "dump.json"}})
		assert.NoError(t, err)
		assert.Equal(t, []string{"dump.json"}, files)
	})

	t.Run("batch", func(t *testing.T) {
		opts := &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.json")}}
		files, err := GetFilesToProcess(opts)
		assert.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")}, files)
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := GetFilesToProcess(&options.Program{Parameters: options.Parameters{Batch: "["}})
		assert.ErrorContains(t, err, "globbing batch pattern")
	})
}

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		input  string
		format string
		want   string
	}{
		{"memory_dump.json", options.FormatJSON, "memory_dump.summary.json"},
		{"dumps/save1.json", options.FormatText, "dumps/save1.summary.txt"},
		{"dump", "", "dump.summary.json"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateOutputFilename(tt.input, tt.format))
		})
	}
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)

	PrintBanner(logger, options.Program{}, "1.0.0", "0123456789abcdef", "2024-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "1.0.0", "", "")
}
