// Package libsvm parses the LibSVM/SVM-light sparse text format into typed
// columnar buffers.
//
// The format is line oriented. Each data line carries a label, an optional
// instance weight, an optional query id, and a sparse feature list:
//
//	label[:weight] [qid:N] index:value index:value ... [# comment]
//
// Parsing produces a RowBlock: per-row Label, optional Weight and QID
// columns, and the features of all rows concatenated into Index/Value with a
// CSR-style Offset column marking row boundaries. Feature indices are
// normalized to 0-based storage, either as configured or by sniffing whether
// the data ever uses index 0.
//
// # Thread Safety
//
// A Parser is immutable after construction and safe for concurrent use:
// distinct goroutines may call ParseBlock on the same Parser as long as each
// call gets its own input bytes and its own RowBlock. The package-level
// functions construct their own state per call.
//
//	// Safe: concurrent block parsing with a shared Parser
//	p, _ := libsvm.NewParser(libsvm.DefaultOptions())
//	go func() { p.ParseBlock(block1, &out1) }()
//	go func() { p.ParseBlock(block2, &out2) }()
//
// # Parsing APIs
//
// The package provides two entry points:
//
//   - Parse(string) - parses a complete document held in memory
//   - ParseReader(io.Reader) - reads a stream to the end, then parses it
//
// Callers that shard a large file into line-aligned blocks themselves should
// construct one Parser and call ParseBlock per block; see the examples
// directory.
//
// # Example usage with Parse:
//
//	block, err := libsvm.Parse("1 1:0.5 4:1.5\n-1 2:1.0\n")
//	if err != nil {
//	    // handle error
//	}
//	for _, row := range block.Rows() {
//	    // row.Label, row.Index, row.Value
//	}
package libsvm

import (
	"io"

	"github.com/shapestone/shape-libsvm/internal/parser"
)

// FormatName is the single format identifier this package accepts.
const FormatName = "libsvm"

// Format returns the format identifier for this parser.
// Returns "libsvm" to identify the supported sparse text format.
func Format() string {
	return FormatName
}

// Parser parses LibSVM text blocks with a fixed configuration.
//
// Construct it once with NewParser and reuse it for every block of a
// document; the configuration is validated eagerly and cannot change
// afterwards.
type Parser struct {
	opts parser.Options
}

// NewParser creates a Parser with the given options.
//
// The options are validated eagerly: an unsupported Format or an invalid
// comment marker fails construction with an *OptionsError.
func NewParser(opts Options) (*Parser, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Parser{opts: parser.Options{
		Indexing: opts.IndexingMode,
		Comment:  opts.Comment,
	}}, nil
}

// ParseBlock parses one block of whole lines into out.
//
// out is reset first and repopulated; reusing one RowBlock across blocks
// keeps the column allocations. On error the block is rejected as a whole
// and out carries no guarantees.
func (p *Parser) ParseBlock(data []byte, out *RowBlock) error {
	return parser.ParseBlock(data, p.opts, out)
}

// Parse parses a LibSVM document from a string with default options.
//
// Example:
//
//	block, err := libsvm.Parse("1 1:1.0 3:1.0\n-1 2:0.5\n")
//	// block.Label = [1 -1], block.Index = [0 2 1] (1-based input detected)
func Parse(input string) (*RowBlock, error) {
	return ParseWithOptions(input, DefaultOptions())
}

// ParseWithOptions parses a LibSVM document from a string with custom
// options.
//
// Example:
//
//	opts := libsvm.DefaultOptions()
//	opts.IndexingMode = libsvm.IndexingZeroBased
//	block, err := libsvm.ParseWithOptions("1 0:1.0 3:1.0\n", opts)
func ParseWithOptions(input string, opts Options) (*RowBlock, error) {
	p, err := NewParser(opts)
	if err != nil {
		return nil, err
	}
	var out RowBlock
	if err := p.ParseBlock([]byte(input), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParseReader parses a LibSVM document from an io.Reader with default
// options.
//
// The reader is consumed to the end before parsing. The reader can be any
// io.Reader implementation: os.File, strings.Reader, a network stream, a
// decompressor, etc.
//
// Example:
//
//	file, err := os.Open("train.svm")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	block, err := libsvm.ParseReader(file)
func ParseReader(reader io.Reader) (*RowBlock, error) {
	return ParseReaderWithOptions(reader, DefaultOptions())
}

// ParseReaderWithOptions parses a LibSVM document from an io.Reader with
// custom options.
func ParseReaderWithOptions(reader io.Reader, opts Options) (*RowBlock, error) {
	p, err := NewParser(opts)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	var out RowBlock
	if err := p.ParseBlock(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate checks whether the input parses as LibSVM text under the default
// options.
//
// Returns nil if the input is valid. Returns an error describing the first
// problem otherwise. Note that the format is permissive: malformed feature
// tokens are skipped, so only configuration and cross-row consistency
// problems make a document invalid.
//
//	if err := libsvm.Validate(input); err != nil {
//	    fmt.Println("invalid LibSVM data:", err)
//	}
func Validate(input string) error {
	_, err := Parse(input)
	return err
}

// ValidateReader checks whether the input from an io.Reader is valid LibSVM
// text under the default options. This reads the entire input.
func ValidateReader(reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	return Validate(string(data))
}
