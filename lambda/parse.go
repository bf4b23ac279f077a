package lambda

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every error returned from Parse.
var ErrMalformed = errors.New("malformed expression")

// SyntaxError reports where and why Parse rejected its input.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", ErrMalformed, e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrMalformed }

type parser struct {
	src string
	pos int
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

// got describes the character under the cursor for error messages.
func (p *parser) got() string {
	if c, ok := p.peek(); ok {
		return string(c)
	}
	return "EOF"
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(c byte) error {
	if got, ok := p.peek(); !ok || got != c {
		return p.errorf("expected %q, got %q", string(c), p.got())
	}
	p.pos++
	return nil
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (p *parser) parse() (Term, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("expected expression, got %q", "EOF")
	}
	switch c {
	case '\\':
		return p.parseAbs()
	case '(':
		return p.parseApp()
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &Var{name}, nil
}

func (p *parser) parseName() (string, error) {
	start := p.pos
	for c, ok := p.peek(); ok && isLetter(c); c, ok = p.peek() {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected name, got %q", p.got())
	}
	return p.src[start:p.pos], nil
}

func (p *parser) parseAbs() (Term, error) {
	p.pos++ // '\'
	param, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.expect('.'); err != nil {
		return nil, err
	}
	body, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Abs{param, body}, nil
}

func (p *parser) parseApp() (Term, error) {
	p.pos++ // '('
	fn, err := p.parse()
	if err != nil {
		return nil, err
	}
	if c, ok := p.peek(); !ok || !isSpace(c) {
		return nil, p.errorf("expected whitespace, got %q", p.got())
	}
	for c, ok := p.peek(); ok && isSpace(c); c, ok = p.peek() {
		p.pos++
	}
	arg, err := p.parse()
	if err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return &App{fn, arg}, nil
}

// Parse reads a single term that must span all of src. Whitespace is only
// allowed between the function and argument of an application. On failure
// the returned error wraps ErrMalformed and no partial tree is returned.
func Parse(src string) (Term, error) {
	p := parser{src: src}
	t, err := p.parse()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.errorf("expected %q, got %q", "EOF", p.got())
	}
	return t, nil
}

// MustParse is like Parse but panics if src is malformed.
func MustParse(src string) Term {
	t, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return t
}
