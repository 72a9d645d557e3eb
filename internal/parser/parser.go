// Package parser implements a high-performance LibSVM/SVM-light block parser.
//
// The parser scans a byte range containing whole text lines and appends the
// decoded rows into a caller-owned RowBlock. It parses directly from bytes to
// typed columns with no tokenization layer and no intermediate tree.
//
// Each line has the shape:
//
//	label[:weight] [qid:N] index:value index:value ... [# comment]
//
// Blank lines and comment-only lines contribute no row. A trailing comment
// after the features is ignored. Both LF and CR terminate a line, and the
// final line does not need a terminator.
//
// The parser holds no state between calls and performs no I/O; parsing one
// block is sequential and bounded-time per input byte. Distinct blocks may be
// parsed concurrently as long as each call gets its own RowBlock.
package parser

import "fmt"

// Options configures block parsing.
type Options struct {
	// Indexing selects how textual feature indices map to stored indices.
	// Default: IndexingAuto
	Indexing IndexingMode

	// Comment is the comment marker byte. Everything from the marker to the
	// end of the line is ignored.
	// Default: '#'
	Comment byte
}

// DefaultOptions returns the default parser configuration.
func DefaultOptions() Options {
	return Options{
		Indexing: IndexingAuto,
		Comment:  '#',
	}
}

// IndexingMode selects how textual feature indices are normalized.
//
// Stored indices are always 0-based after parsing. The mode decides whether
// the text is read as 0-based, 1-based, or sniffed from the data.
type IndexingMode int8

const (
	// IndexingAuto infers the base from the block: if the block is non-empty
	// and never uses index 0, it is assumed to be 1-based. The heuristic is
	// the one used by sklearn.datasets.load_svmlight_file.
	IndexingAuto IndexingMode = iota

	// IndexingZeroBased reads feature indices as written.
	IndexingZeroBased

	// IndexingOneBased subtracts 1 from every feature index.
	IndexingOneBased
)

// String returns the mode name for diagnostics.
func (m IndexingMode) String() string {
	switch m {
	case IndexingAuto:
		return "auto"
	case IndexingZeroBased:
		return "zero-based"
	case IndexingOneBased:
		return "one-based"
	default:
		return fmt.Sprintf("IndexingMode(%d)", int8(m))
	}
}

// ParseBlock parses one block of LibSVM text into out.
//
// out is reset first, then populated append-only, and finally the feature
// indices are normalized according to opts.Indexing. On error the block is
// rejected as a whole and out carries no guarantees.
//
// The input must contain whole lines; a block boundary in the middle of a
// token loses that token to whichever side does not see its digits.
func ParseBlock(data []byte, opts Options, out *RowBlock) error {
	out.Reset()

	p := &blockParser{
		data:      data,
		pos:       0,
		length:    len(data),
		comment:   opts.Comment,
		out:       out,
		hasWeight: presenceUnknown,
		hasQID:    presenceUnknown,
		minIndex:  ^uint64(0),
	}

	if err := p.parse(); err != nil {
		return err
	}

	p.resolveIndexing(opts.Indexing)
	return nil
}

// presence tracks whether an optional per-row field has been seen.
// The first parsed row decides for the whole block.
type presence int8

const (
	presenceUnknown presence = iota
	presenceAbsent
	presencePresent
)

// blockParser carries the cursor and cross-row state for one block.
type blockParser struct {
	data    []byte
	pos     int
	length  int
	comment byte

	out *RowBlock

	hasWeight presence
	hasQID    presence

	// minIndex is the smallest feature index appended so far, used by the
	// auto-detection pass. Starts at the maximum uint64.
	minIndex uint64
}

// parse walks the block line by line.
func (p *blockParser) parse() error {
	for p.pos < p.length {
		lend := p.lineEnd()
		if err := p.parseLine(lend); err != nil {
			return err
		}
		p.pos = lend
		p.skipTerminator()
	}
	return nil
}

// lineEnd returns the position of the first line terminator at or after the
// cursor, or the end of the block if none is found.
func (p *blockParser) lineEnd() int {
	for i := p.pos; i < p.length; i++ {
		c := p.data[i]
		if c == '\n' || c == '\r' {
			return i
		}
	}
	return p.length
}

// skipTerminator consumes a single terminator byte. The LF of a CRLF pair is
// left to form an empty line, which contributes no row.
func (p *blockParser) skipTerminator() {
	if p.pos < p.length && (p.data[p.pos] == '\n' || p.data[p.pos] == '\r') {
		p.pos++
	}
}

// parseLine decodes one line span [p.pos, lend) into the output columns.
//
// A line with no parsable label contributes no row. Otherwise the line goes
// through three phases: label[:weight], optional qid:N, then features until
// the line end or a comment marker.
func (p *blockParser) parseLine(lend int) error {
	pos := p.pos
	pos += skipBlankComment(p.data, pos, lend, p.comment)

	n, label, weight, next := parseFloatPair(p.data, pos, lend)
	if n == 0 {
		// Blank line, comment line, or garbage where the label should be.
		return nil
	}
	pos = next
	row := len(p.out.Label)

	if n == 2 {
		if p.hasWeight == presenceAbsent {
			return &ConsistencyError{Field: "weight", Row: row}
		}
		p.hasWeight = presencePresent
		p.out.Weight = append(p.out.Weight, float32(weight))
	} else {
		if p.hasWeight == presencePresent {
			return &ConsistencyError{Field: "weight", Row: row}
		}
		p.hasWeight = presenceAbsent
	}
	p.out.Label = append(p.out.Label, float32(label))

	pos += skipBlankComment(p.data, pos, lend, p.comment)
	if hasQIDPrefix(p.data, pos, lend) {
		if p.hasQID == presenceAbsent {
			return &ConsistencyError{Field: "qid", Row: row}
		}
		p.hasQID = presencePresent
		pos += len(qidPrefix)
		qid, next := parseDigits(p.data, pos, lend)
		p.out.QID = append(p.out.QID, qid)
		pos = next
	} else {
		if p.hasQID == presencePresent {
			return &ConsistencyError{Field: "qid", Row: row}
		}
		p.hasQID = presenceAbsent
	}

	for pos < lend {
		pos += skipBlankComment(p.data, pos, lend, p.comment)
		if pos >= lend {
			break
		}
		n, index, value, next := parseIndexPair(p.data, pos, lend)
		if n == 2 {
			p.out.Index = append(p.out.Index, index)
			p.out.Value = append(p.out.Value, float32(value))
			if index < p.minIndex {
				p.minIndex = index
			}
			pos = next
			continue
		}
		// Incomplete or malformed index:value token. Drop it wholesale and
		// keep scanning, so Index and Value stay parallel.
		pos = skipToken(p.data, next, lend, p.comment)
	}

	p.out.Offset = append(p.out.Offset, uint64(len(p.out.Index)))
	return nil
}

// resolveIndexing normalizes feature indices to 0-based storage.
// Runs exactly once per block, after the last offset has been pushed.
func (p *blockParser) resolveIndexing(mode IndexingMode) {
	oneBased := mode == IndexingOneBased ||
		(mode == IndexingAuto && len(p.out.Index) > 0 && p.minIndex > 0)
	if !oneBased {
		return
	}
	for i := range p.out.Index {
		p.out.Index[i]--
	}
}

// qidPrefix marks a query-id token.
const qidPrefix = "qid:"

// hasQIDPrefix reports whether the bytes at pos start with "qid:".
func hasQIDPrefix(data []byte, pos, end int) bool {
	if end-pos < len(qidPrefix) {
		return false
	}
	return string(data[pos:pos+len(qidPrefix)]) == qidPrefix
}

// skipBlankComment returns how far to advance from pos: the distance to the
// first non-blank byte, or the full remaining length of the line when the
// comment marker or the line end is reached first. Callers that land on the
// line end treat the rest of the line as empty.
func skipBlankComment(data []byte, pos, end int, comment byte) int {
	for i := pos; i < end; i++ {
		c := data[i]
		if c == comment {
			return end - pos
		}
		if !isBlank(c) {
			return i - pos
		}
	}
	return end - pos
}

// skipToken advances past the remainder of a malformed token: everything up
// to the next blank, comment marker, or line end. Advances at least one byte
// when pos sits on a non-blank, non-comment character.
func skipToken(data []byte, pos, end int, comment byte) int {
	for pos < end {
		c := data[pos]
		if isBlank(c) || c == comment {
			return pos
		}
		pos++
	}
	return pos
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
