// Package libsvm exposes the parsed columns as a RowBlock with typed row
// views.
//
// # RowBlock
//
// RowBlock is the columnar container populated by parsing. The feature
// matrix is stored CSR-style: Index and Value hold all rows' features
// concatenated, and Offset marks the boundaries, so row i occupies
// Index[Offset[i]:Offset[i+1]].
//
//	block, _ := libsvm.Parse("1 1:0.5 4:1.5\n-1 2:1.0\n")
//	block.NumRows()    // 2
//	block.NumEntries() // 3
//
// # Row views
//
// Row gives zero-copy access to one row:
//
//	row, _ := block.Row(0)
//	row.Label          // 1
//	row.Index          // aliases block.Index
//
// # Reuse
//
// A RowBlock can be handed back to Parser.ParseBlock for the next block;
// it is reset first and its column capacity is retained.
package libsvm

import "github.com/shapestone/shape-libsvm/internal/parser"

// RowBlock holds the columnar output of one parsed block: Label, optional
// Weight and QID (one entry per row or empty), and the CSR-style
// Index/Value/Offset feature columns.
type RowBlock = parser.RowBlock

// Row is a read-only view of one row in a RowBlock. Index and Value alias
// the block's columns and stay valid until the block is reset or reparsed.
type Row = parser.Row

// ConsistencyError reports a row whose weight or qid presence disagrees
// with the rest of the block. The error is terminal for the block.
type ConsistencyError = parser.ConsistencyError

// ErrRowOutOfRange is returned by RowBlock.Row for an index outside
// [0, NumRows).
var ErrRowOutOfRange = parser.ErrRowOutOfRange
