// Package libsvm provides RowBlock rendering back to LibSVM text.
//
// This file implements the inverse of parsing, converting the columnar
// buffers into the line-oriented text representation.
package libsvm

import (
	"bytes"
	"fmt"
	"strconv"
)

// WriterOptions configures LibSVM writing behavior.
type WriterOptions struct {
	// OneBased controls whether feature indices are written 1-based.
	// Stored indices are 0-based; many existing corpora are 1-based.
	// Default: false (write indices as stored)
	OneBased bool

	// UseCRLF controls whether to use \r\n (true) or \n (false) as the line
	// terminator.
	// Default: false (use \n)
	UseCRLF bool
}

// DefaultWriterOptions returns the default writer configuration.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{
		OneBased: false,
		UseCRLF:  false,
	}
}

// Render converts a RowBlock to LibSVM text bytes with default options.
//
// Rendering emits one line per row:
//
//	label[:weight] [qid:N] index:value index:value ...
//
// Floats are written in their shortest round-tripping form. Render is the
// inverse of parsing with IndexingZeroBased: parsing the output reproduces
// the block.
//
// Example:
//
//	block, _ := libsvm.Parse("1 1:0.5\n")
//	text, _ := libsvm.Render(block)
//	// text: "1 0:0.5\n" (indices normalized to 0-based by parsing)
func Render(block *RowBlock) ([]byte, error) {
	return RenderWithOptions(block, DefaultWriterOptions())
}

// RenderWithOptions converts a RowBlock to LibSVM text bytes with custom
// options.
//
// Example:
//
//	opts := libsvm.DefaultWriterOptions()
//	opts.OneBased = true
//	text, err := libsvm.RenderWithOptions(block, opts)
func RenderWithOptions(block *RowBlock, opts WriterOptions) ([]byte, error) {
	if block == nil || block.NumRows() == 0 {
		return []byte{}, nil
	}
	if err := checkRenderable(block); err != nil {
		return nil, err
	}

	terminator := "\n"
	if opts.UseCRLF {
		terminator = "\r\n"
	}

	var buf bytes.Buffer
	rows := block.NumRows()
	for i := 0; i < rows; i++ {
		buf.Write(appendFloat(nil, block.Label[i]))
		if block.HasWeight() {
			buf.WriteByte(':')
			buf.Write(appendFloat(nil, block.Weight[i]))
		}
		if block.HasQID() {
			buf.WriteString(" qid:")
			buf.Write(strconv.AppendUint(nil, block.QID[i], 10))
		}
		lo, hi := block.Offset[i], block.Offset[i+1]
		for j := lo; j < hi; j++ {
			index := block.Index[j]
			if opts.OneBased {
				index++
			}
			buf.WriteByte(' ')
			buf.Write(strconv.AppendUint(nil, index, 10))
			buf.WriteByte(':')
			buf.Write(appendFloat(nil, block.Value[j]))
		}
		buf.WriteString(terminator)
	}
	return buf.Bytes(), nil
}

// checkRenderable verifies the column invariants a well-formed block holds
// after parsing. Hand-built blocks that violate them are rejected instead of
// producing text that cannot round-trip.
func checkRenderable(block *RowBlock) error {
	rows := block.NumRows()
	if len(block.Offset) != rows+1 {
		return fmt.Errorf("libsvm: cannot render block: len(Offset) = %d, want %d", len(block.Offset), rows+1)
	}
	if len(block.Weight) != 0 && len(block.Weight) != rows {
		return fmt.Errorf("libsvm: cannot render block: len(Weight) = %d, want 0 or %d", len(block.Weight), rows)
	}
	if len(block.QID) != 0 && len(block.QID) != rows {
		return fmt.Errorf("libsvm: cannot render block: len(QID) = %d, want 0 or %d", len(block.QID), rows)
	}
	if len(block.Value) != len(block.Index) {
		return fmt.Errorf("libsvm: cannot render block: len(Value) = %d, want len(Index) = %d", len(block.Value), len(block.Index))
	}
	if block.Offset[0] != 0 {
		return fmt.Errorf("libsvm: cannot render block: Offset[0] = %d, want 0", block.Offset[0])
	}
	for i := 1; i <= rows; i++ {
		if block.Offset[i] < block.Offset[i-1] {
			return fmt.Errorf("libsvm: cannot render block: Offset not non-decreasing at row %d", i-1)
		}
	}
	if rows > 0 && block.Offset[rows] != uint64(len(block.Index)) {
		return fmt.Errorf("libsvm: cannot render block: final offset = %d, want %d", block.Offset[rows], len(block.Index))
	}
	return nil
}

// appendFloat writes a float32 in its shortest form that parses back to the
// same value.
func appendFloat(dst []byte, f float32) []byte {
	return strconv.AppendFloat(dst, float64(f), 'g', -1, 32)
}
