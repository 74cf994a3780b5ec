// Package options contains the program options.
package options

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// DefaultTables is the default directory of the lookup table files.
const DefaultTables = "dataset"

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input memory dump .json file"`
	Output string `flag:"o" usage:"output file (default: stdout)"`
	Tables string `flag:"t" usage:"directory containing the lookup table files" default:"dataset"`
	Layout string `flag:"l" usage:"memory layout profile .ini file (default: built in red-blue-en)"`
	Batch  string `flag:"batch" usage:"batch process dumps matching pattern (e.g. dumps/*.json)"`
}

// Flags contains behavior options.
type Flags struct {
	Format string `flag:"f" usage:"output format: json, text (default: from output file extension)"`
	Verify bool   `flag:"verify" usage:"verify that decoding the dump again produces identical output"`
	Debug  bool   `flag:"debug" usage:"enable debug logging"`
	Quiet  bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the decoder.
type Program struct {
	Parameters
	Flags
}
