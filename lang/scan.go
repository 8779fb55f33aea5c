package lang

import (
	"unicode"

	"github.com/ardnew/reldate/zoned"
)

const (
	keyword   = "now"
	maxAmount = 1_000_000_000
)

// scanner is the cursor over one expression. A new scanner is created for
// every evaluation.
type scanner struct {
	src  []rune
	text string
	pos  int
}

func newScanner(text string) *scanner {
	return &scanner{src: []rune(text), text: text}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// peek returns the rune under the cursor, or 0 at end of input.
func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}

	return s.src[s.pos]
}

func (s *scanner) advance() {
	if !s.eof() {
		s.pos++
	}
}

func (s *scanner) skipSpaces() {
	for r := s.peek(); r == ' ' || r == '\t'; r = s.peek() {
		s.advance()
	}
}

// keyword consumes the case-insensitive "now" keyword and any surrounding
// spaces.
func (s *scanner) keyword() error {
	s.skipSpaces()

	for _, want := range keyword {
		if s.eof() || unicode.ToLower(s.peek()) != want {
			return s.fail(KindLiteral, s.pos, `"`+string(want)+`" expected`)
		}

		s.advance()
	}

	s.skipSpaces()

	return nil
}

// amount consumes an optional decimal integer. It returns 1 when no digit is
// present, along with the offset where the number starts (or would start).
func (s *scanner) amount() (n, start int, err error) {
	start = s.pos

	if !isDigit(s.peek()) {
		return 1, start, nil
	}

	for isDigit(s.peek()) {
		d := int(s.peek() - '0')
		if n > (maxAmount-d)/10 {
			return 0, start, s.fail(KindOverflow, start, "too big int")
		}

		n = n*10 + d

		s.advance()
	}

	return n, start, nil
}

// unit consumes a single unit code.
func (s *scanner) unit() (zoned.Unit, error) {
	u, ok := zoned.ParseUnit(s.peek())
	if !ok {
		return 0, s.fail(
			KindUnit, s.pos,
			"unexpected time unit, allowed: "+zoned.UnitCodes(", "),
		)
	}

	s.advance()

	return u, nil
}

func (s *scanner) fail(kind Kind, pos int, msg string) *Error {
	return &Error{
		Source:   s.text,
		Message:  msg,
		Position: pos,
		Kind:     kind,
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
