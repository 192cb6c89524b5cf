package vdf

import (
	"fmt"
)

// FormatError reports malformed KeyValues text together with the
// position (1-based line and column) where parsing stopped.
type FormatError struct {
	Line int
	Col  int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("vdf: line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

type tokenKind int

const (
	tokenString tokenKind = iota
	tokenOpen
	tokenClose
	tokenEOF
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

type lexer struct {
	input string
	pos   int
	line  int
	col   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input, line: 1, col: 1}
}

func (l *lexer) errorf(line, col int, format string, args ...interface{}) *FormatError {
	return &FormatError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

func (l *lexer) advance() byte {
	c := l.input[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

// next returns the next token, skipping whitespace and // comments.
func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		case c == '/':
			if l.pos+1 >= len(l.input) || l.input[l.pos+1] != '/' {
				return l.scanBare(), nil
			}
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.advance()
			}
		case c == '{':
			t := token{kind: tokenOpen, line: l.line, col: l.col}
			l.advance()
			return t, nil
		case c == '}':
			t := token{kind: tokenClose, line: l.line, col: l.col}
			l.advance()
			return t, nil
		case c == '"':
			return l.scanString()
		default:
			return l.scanBare(), nil
		}
	}
	return token{kind: tokenEOF, line: l.line, col: l.col}, nil
}

// scanBare reads an unquoted token. Valve's own files mostly quote
// everything, but bare keys do occur and the reference parsers accept
// them. A bare token ends at whitespace, a brace or a quote and no
// escapes apply.
func (l *lexer) scanBare() token {
	startLine, startCol := l.line, l.col
	start := l.pos
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '{' || c == '}' || c == '"' {
			break
		}
		l.advance()
	}
	return token{kind: tokenString, text: l.input[start:l.pos], line: startLine, col: startCol}
}

func (l *lexer) scanString() (token, error) {
	startLine, startCol := l.line, l.col
	l.advance() // opening quote
	var out []byte
	for l.pos < len(l.input) {
		c := l.advance()
		switch c {
		case '"':
			return token{kind: tokenString, text: string(out), line: startLine, col: startCol}, nil
		case '\\':
			if l.pos >= len(l.input) {
				return token{}, l.errorf(startLine, startCol, "unterminated string")
			}
			esc := l.advance()
			switch esc {
			case '\\':
				out = append(out, '\\')
			case '"':
				out = append(out, '"')
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				return token{}, l.errorf(l.line, l.col-2, "unsupported escape \\%c", esc)
			}
		case '\n':
			return token{}, l.errorf(startLine, startCol, "unterminated string")
		default:
			out = append(out, c)
		}
	}
	return token{}, l.errorf(startLine, startCol, "unterminated string")
}

// Parse reads a KeyValues document into a Node tree. It returns a
// *FormatError and no partial result when the input is malformed.
func Parse(text string) (*Node, error) {
	l := newLexer(text)
	root := NewNode()
	// stack of open blocks, root at the bottom
	stack := []*Node{root}

	sawEntry := false
	for {
		t, err := l.next()
		if err != nil {
			return nil, err
		}

		switch t.kind {
		case tokenEOF:
			if !sawEntry {
				return nil, l.errorf(t.line, t.col, "empty document")
			}
			if len(stack) > 1 {
				return nil, l.errorf(t.line, t.col, "unexpected end of input, %d unclosed block(s)", len(stack)-1)
			}
			return root, nil

		case tokenClose:
			if len(stack) == 1 {
				return nil, l.errorf(t.line, t.col, "unmatched '}'")
			}
			stack = stack[:len(stack)-1]

		case tokenOpen:
			return nil, l.errorf(t.line, t.col, "'{' without a preceding key")

		case tokenString:
			current := stack[len(stack)-1]
			value, err := l.next()
			if err != nil {
				return nil, err
			}
			switch value.kind {
			case tokenString:
				current.SetString(t.text, value.text)
				sawEntry = true
			case tokenOpen:
				child := NewNode()
				current.SetNode(t.text, child)
				stack = append(stack, child)
				sawEntry = true
			default:
				return nil, l.errorf(t.line, t.col, "key %q has no value or block", t.text)
			}
		}
	}
}
