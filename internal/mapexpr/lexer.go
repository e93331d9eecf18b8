package mapexpr

import (
	"strings"
	"text/scanner"
)

const tokArrow rune = -16

type token struct {
	kind rune
	text string
	pos  int
}

func (t token) String() string {
	switch t.kind {
	case scanner.EOF:
		return "end of expression"
	case tokArrow:
		return `"->"`
	}
	return `"` + t.text + `"`
}

// tokenize splits src into tokens, folding "-" ">" into a single arrow.
func tokenize(src string) ([]token, error) {
	var (
		s    scanner.Scanner
		serr *ParseError
	)
	s.Init(strings.NewReader(src))
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	s.Error = func(s *scanner.Scanner, msg string) {
		if serr == nil {
			serr = errorf(s.Pos().Column, "%s", msg)
		}
	}

	var toks []token
	for {
		r := s.Scan()
		pos := s.Position.Column
		if r == '-' && s.Peek() == '>' {
			s.Next()
			toks = append(toks, token{kind: tokArrow, text: "->", pos: pos})
			continue
		}
		if r == '↦' {
			toks = append(toks, token{kind: tokArrow, text: "↦", pos: pos})
			continue
		}
		toks = append(toks, token{kind: r, text: s.TokenText(), pos: pos})
		if serr != nil {
			return nil, serr
		}
		if r == scanner.EOF {
			return toks, nil
		}
	}
}
