// Package libsvm provides configurable options for LibSVM parsing and
// writing.
package libsvm

import (
	"strconv"

	"github.com/shapestone/shape-libsvm/internal/parser"
)

// IndexingMode selects how textual feature indices are normalized.
// Stored indices are always 0-based after parsing.
type IndexingMode = parser.IndexingMode

const (
	// IndexingAuto infers the base per block: a non-empty block that never
	// uses index 0 is assumed to be 1-based.
	IndexingAuto = parser.IndexingAuto

	// IndexingZeroBased reads feature indices as written.
	IndexingZeroBased = parser.IndexingZeroBased

	// IndexingOneBased subtracts 1 from every feature index.
	IndexingOneBased = parser.IndexingOneBased
)

// IndexingModeFromInt maps the conventional signed-integer setting onto the
// enum: >0 forces 1-based, 0 forces 0-based, <0 requests auto-detection.
// Existing tooling configures the mode this way.
func IndexingModeFromInt(v int) IndexingMode {
	switch {
	case v > 0:
		return IndexingOneBased
	case v == 0:
		return IndexingZeroBased
	default:
		return IndexingAuto
	}
}

// Options configures LibSVM parsing behavior.
type Options struct {
	// Format is the format identifier. The only supported value is
	// "libsvm"; anything else fails NewParser.
	// Default: "libsvm"
	Format string

	// IndexingMode selects 0-based, 1-based, or auto-detected feature
	// indexing.
	// Default: IndexingAuto
	IndexingMode IndexingMode

	// Comment is the comment marker byte. Everything from the marker to the
	// end of the line is ignored.
	// Default: '#'
	Comment byte
}

// DefaultOptions returns the default parser configuration.
func DefaultOptions() Options {
	return Options{
		Format:       FormatName,
		IndexingMode: IndexingAuto,
		Comment:      '#',
	}
}

// Validate checks if the options are valid.
// Returns an *OptionsError if they are not.
func (o Options) Validate() error {
	if o.Format != FormatName {
		return &OptionsError{Field: "Format", Message: "unsupported format " + strconv.Quote(o.Format) + `, only "libsvm" is supported`}
	}
	switch o.IndexingMode {
	case IndexingAuto, IndexingZeroBased, IndexingOneBased:
	default:
		return &OptionsError{Field: "IndexingMode", Message: "unknown indexing mode"}
	}
	if o.Comment == 0 || o.Comment == '\n' || o.Comment == '\r' || isBlankByte(o.Comment) || isDigitByte(o.Comment) || o.Comment == ':' || o.Comment == '.' || o.Comment == '+' || o.Comment == '-' {
		return &OptionsError{Field: "Comment", Message: "invalid comment marker"}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "libsvm: invalid " + e.Field + ": " + e.Message
}

func isBlankByte(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}
