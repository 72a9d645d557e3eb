package parser

import "errors"

// RowBlock holds the columnar output of one parsed block.
//
// The columns form a CSR-style layout: Index and Value hold the features of
// all rows concatenated in row order, and Offset marks the row boundaries,
// so row i occupies Index[Offset[i]:Offset[i+1]].
//
// Weight and QID are optional per block: either empty, or exactly one entry
// per row. The zero value is ready to use; Reset prepares it for a parse and
// keeps the column capacity across blocks.
type RowBlock struct {
	// Label holds one label per row.
	Label []float32

	// Weight holds one instance weight per row, or nothing when the block
	// carries no weights.
	Weight []float32

	// QID holds one query id per row, or nothing when the block carries no
	// query ids.
	QID []uint64

	// Index holds the feature indices of all rows, concatenated, normalized
	// to 0-based after parsing.
	Index []uint64

	// Value holds the feature values, parallel to Index.
	Value []float32

	// Offset holds len(Label)+1 non-decreasing positions into Index/Value,
	// starting at 0.
	Offset []uint64
}

// Reset clears the block back to the empty state, retaining capacity.
// An empty block still has Offset == [0].
func (b *RowBlock) Reset() {
	b.Label = b.Label[:0]
	b.Weight = b.Weight[:0]
	b.QID = b.QID[:0]
	b.Index = b.Index[:0]
	b.Value = b.Value[:0]
	b.Offset = append(b.Offset[:0], 0)
}

// NumRows returns the number of rows in the block.
func (b *RowBlock) NumRows() int {
	return len(b.Label)
}

// NumEntries returns the total number of stored features across all rows.
func (b *RowBlock) NumEntries() int {
	return len(b.Index)
}

// HasWeight reports whether the block carries per-row weights.
func (b *RowBlock) HasWeight() bool {
	return len(b.Weight) > 0
}

// HasQID reports whether the block carries per-row query ids.
func (b *RowBlock) HasQID() bool {
	return len(b.QID) > 0
}

// ErrRowOutOfRange is returned by Row for an index outside [0, NumRows).
var ErrRowOutOfRange = errors.New("libsvm: row index out of range")

// Row is a read-only view of one row in a RowBlock.
//
// Index and Value alias the block's columns; they are valid until the block
// is reset or reparsed and must not be modified.
type Row struct {
	// Label is the row label.
	Label float32

	// Weight is the instance weight, 1 when the block has no weights.
	Weight float32

	// QID is the query id, 0 when the block has no query ids.
	QID uint64

	// Index holds the feature indices of this row.
	Index []uint64

	// Value holds the feature values of this row.
	Value []float32
}

// Row returns a view of row i.
func (b *RowBlock) Row(i int) (Row, error) {
	if i < 0 || i >= len(b.Label) {
		return Row{}, ErrRowOutOfRange
	}
	lo, hi := b.Offset[i], b.Offset[i+1]
	r := Row{
		Label:  b.Label[i],
		Weight: 1,
		Index:  b.Index[lo:hi:hi],
		Value:  b.Value[lo:hi:hi],
	}
	if len(b.Weight) > 0 {
		r.Weight = b.Weight[i]
	}
	if len(b.QID) > 0 {
		r.QID = b.QID[i]
	}
	return r, nil
}

// Rows materializes views of every row in the block.
func (b *RowBlock) Rows() []Row {
	rows := make([]Row, len(b.Label))
	for i := range rows {
		rows[i], _ = b.Row(i)
	}
	return rows
}
