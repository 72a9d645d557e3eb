package parser

import "fmt"

// ConsistencyError reports a row whose optional fields disagree with the
// rest of the block. Weight and qid must appear on every row of a block or
// on none; the first parsed row decides. The error is terminal for the
// block: the output columns carry no guarantees once it is returned.
type ConsistencyError struct {
	// Field names the offending field, "weight" or "qid".
	Field string

	// Row is the zero-based ordinal of the offending row within the block,
	// counting only lines that contributed a row.
	Row int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("libsvm: %s must be provided for all rows when used (row %d disagrees with earlier rows)", e.Field, e.Row)
}
