package docpath

import (
	"fmt"
	"strconv"

	"github.com/nagaozen/schematools/schemaerrors"
)

// Segment represents a single segment in a parsed path.
type Segment interface {
	// segmentType returns a string identifying the segment type for debugging.
	segmentType() string
}

// KeySegment addresses a map entry by key.
type KeySegment struct {
	Key string
}

func (s KeySegment) segmentType() string { return "key" }

// IndexSegment addresses an array element by index.
// Only bracketed bare digits parse as indices.
type IndexSegment struct {
	Index int
}

func (s IndexSegment) segmentType() string { return "index" }

// Parse parses a dot/bracket-notation path into ordered segments.
//
// Examples:
//
//	Parse("a.b")          // [key a, key b]
//	Parse("a[0].b")       // [key a, index 0, key b]
//	Parse("a['x.y[0]']")  // [key a, key "x.y[0]"]
//	Parse("a.0")          // [key a, key "0"] - not an index
//	Parse("")             // [key ""]
func Parse(path string) ([]Segment, error) {
	if path == "" {
		return []Segment{KeySegment{Key: ""}}, nil
	}

	p := &parser{input: path}
	return p.parse()
}

// parser is the internal path parser.
type parser struct {
	input string
	pos   int
}

func (p *parser) parse() ([]Segment, error) {
	var segments []Segment

	// A leading '.' or '[' starts the first segment explicitly;
	// otherwise the path opens with a bare key run.
	if ch := p.peek(); ch != '.' && ch != '[' {
		segments = append(segments, KeySegment{Key: p.parseKeyRun()})
	}

	for p.pos < len(p.input) {
		switch ch := p.peek(); ch {
		case '.':
			p.advance()
			// A dot introduces a key run unless a bracket follows directly.
			if p.peek() != '[' {
				segments = append(segments, KeySegment{Key: p.parseKeyRun()})
			}

		case '[':
			p.advance()
			seg, err := p.parseBracketSegment()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)

		default:
			return nil, p.errorf("unexpected character %q", ch)
		}
	}

	return segments, nil
}

// parseKeyRun consumes a maximal run excluding '.', '[' and ']'.
// The run may be empty (consecutive dots address empty-string keys).
func (p *parser) parseKeyRun() string {
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == '.' || ch == '[' || ch == ']' {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) parseBracketSegment() (Segment, error) {
	if p.pos >= len(p.input) {
		return nil, p.errorf("unexpected end after '['")
	}

	ch := p.peek()

	// Quoted key: ['key'] or ["key"] - content may contain '.', '[' and ']'.
	if ch == '\'' || ch == '"' {
		quote := ch
		p.advance()
		key, err := p.parseQuotedString(quote)
		if err != nil {
			return nil, err
		}
		if !p.consume(']') {
			return nil, p.errorf("expected ']' after quoted key")
		}
		return KeySegment{Key: key}, nil
	}

	// Bare digits: array index.
	if ch >= '0' && ch <= '9' {
		start := p.pos
		for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
			p.pos++
		}
		numStr := p.input[start:p.pos]
		if !p.consume(']') {
			return nil, p.errorf("expected ']' after index")
		}
		idx, err := strconv.Atoi(numStr)
		if err != nil {
			return nil, p.errorf("invalid index %q", numStr)
		}
		return IndexSegment{Index: idx}, nil
	}

	return nil, p.errorf("unexpected character %q in bracket", ch)
}

func (p *parser) parseQuotedString(quote byte) (string, error) {
	start := p.pos
	for p.pos < len(p.input) {
		if p.input[p.pos] == quote {
			s := p.input[start:p.pos]
			p.pos++
			return s, nil
		}
		p.pos++
	}
	return "", p.errorf("unterminated string")
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) advance() {
	if p.pos < len(p.input) {
		p.pos++
	}
}

func (p *parser) consume(ch byte) bool {
	if p.peek() == ch {
		p.advance()
		return true
	}
	return false
}

func (p *parser) errorf(format string, args ...any) error {
	return &schemaerrors.PathError{
		Path:    p.input,
		Message: fmt.Sprintf(format+" at position %d", append(args, p.pos)...),
	}
}
