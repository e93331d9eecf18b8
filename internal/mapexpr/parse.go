package mapexpr

import (
	"fmt"
	"strconv"
	"text/scanner"

	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/linalg"
	"gonum.org/v1/gonum/mat"
)

// term is one summand before normalization: either coeff·symbol or a
// constant vector.
type term struct {
	pos    int
	coeff  Coefficient
	symbol string
	vec    mat.Vector
}

type parser struct {
	toks []token
	i    int
	opts *options

	state string
	input string
}

// Parse reads src into its normal form. Only WithMatrix and WithVector are
// consulted; dimensions and regions are handled by Compile.
func Parse(src string, opts ...Option) (*NormalForm, error) {
	return parse(src, newOptions(opts))
}

func parse(src string, o *options) (*NormalForm, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, opts: o}
	if err := p.lhs(); err != nil {
		return nil, err
	}

	var terms []term
	for {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)

		switch tok := p.peek(); tok.kind {
		case '+':
			p.next()
		case scanner.EOF:
			return p.normalize(terms)
		case '-':
			return nil, errorf(tok.pos, "subtraction is not supported")
		default:
			return nil, errorf(tok.pos, "unexpected %s after term", tok)
		}
	}
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != scanner.EOF {
		p.i++
	}
	return t
}

func (p *parser) expect(kind rune, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, errorf(t.pos, "expected %s, got %s", what, t)
	}
	return t, nil
}

// lhs reads "x ->" or "(x, u) ->".
func (p *parser) lhs() error {
	t := p.next()
	switch t.kind {
	case scanner.Ident:
		p.state = t.text
	case '(':
		x, err := p.expect(scanner.Ident, "state symbol")
		if err != nil {
			return err
		}
		if _, err := p.expect(',', `","`); err != nil {
			return err
		}
		u, err := p.expect(scanner.Ident, "input symbol")
		if err != nil {
			return err
		}
		if u.text == x.text {
			return errorf(u.pos, "input symbol %q repeats the state symbol", u.text)
		}
		if t := p.peek(); t.kind == ',' {
			return errorf(t.pos, "at most one input symbol is supported")
		}
		if _, err := p.expect(')', `")"`); err != nil {
			return err
		}
		p.state, p.input = x.text, u.text
	default:
		return errorf(t.pos, "expected argument list, got %s", t)
	}
	_, err := p.expect(tokArrow, `"->"`)
	return err
}

func (p *parser) isSymbol(name string) bool {
	return name == p.state || (p.input != "" && name == p.input)
}

func (p *parser) term() (term, error) {
	t := p.peek()
	switch {
	case t.kind == '[':
		lit, err := p.bracket()
		if err != nil {
			return term{}, err
		}
		if p.peek().kind == '*' {
			p.next()
			return p.symbolTerm(t.pos, Coefficient{Kind: CoeffMatrix, Matrix: lit, Scale: 1})
		}
		v, ok := asVector(lit)
		if !ok {
			r, c := lit.Dims()
			return term{}, errorf(t.pos, "%dx%d matrix is not applied to a symbol", r, c)
		}
		return term{pos: t.pos, vec: v}, nil

	case t.kind == scanner.Ident && t.text == "I" && !p.isSymbol("I"):
		coeff, err := p.identity(1)
		if err != nil {
			return term{}, err
		}
		return p.symbolTerm(t.pos, coeff)

	case t.kind == scanner.Ident && p.isSymbol(t.text):
		p.next()
		if n := p.peek(); n.kind == '*' || n.kind == '(' {
			return term{}, errorf(n.pos, "nonlinear use of %q", t.text)
		}
		return term{pos: t.pos, coeff: Coefficient{Kind: CoeffUnit, Scale: 1}, symbol: t.text}, nil

	case t.kind == scanner.Ident:
		p.next()
		if m, ok := p.opts.matrices[t.text]; ok {
			if dynamo.IsNil(m) {
				return term{}, errorf(t.pos, "matrix %q is bound to nil", t.text)
			}
			if _, err := p.expect('*', `"*"`); err != nil {
				return term{}, err
			}
			return p.symbolTerm(t.pos, Coefficient{Kind: CoeffMatrix, Matrix: m, Scale: 1})
		}
		if v, ok := p.opts.vectors[t.text]; ok {
			if dynamo.IsNil(v) {
				return term{}, errorf(t.pos, "vector %q is bound to nil", t.text)
			}
			return term{pos: t.pos, vec: v}, nil
		}
		if p.peek().kind == '(' {
			return term{}, errorf(t.pos, "function %q is not supported", t.text)
		}
		return term{}, errorf(t.pos, "unknown name %q", t.text)

	case t.kind == scanner.Int || t.kind == scanner.Float || t.kind == '-':
		k, err := p.number()
		if err != nil {
			return term{}, err
		}
		if _, err := p.expect('*', `"*"`); err != nil {
			return term{}, err
		}
		if n := p.peek(); n.kind == scanner.Ident && n.text == "I" && !p.isSymbol("I") {
			coeff, err := p.identity(k)
			if err != nil {
				return term{}, err
			}
			return p.symbolTerm(t.pos, coeff)
		}
		return p.symbolTerm(t.pos, Coefficient{Kind: CoeffScalar, Scale: k})

	default:
		return term{}, errorf(t.pos, "unexpected %s", t)
	}
}

// symbolTerm reads the symbol following "coeff *".
func (p *parser) symbolTerm(pos int, coeff Coefficient) (term, error) {
	s, err := p.expect(scanner.Ident, "symbol")
	if err != nil {
		return term{}, err
	}
	if !p.isSymbol(s.text) {
		return term{}, errorf(s.pos, "%q is not an argument of the map", s.text)
	}
	if n := p.peek(); n.kind == '*' {
		return term{}, errorf(n.pos, "nonlinear use of %q", s.text)
	}
	return term{pos: pos, coeff: coeff, symbol: s.text}, nil
}

// identity reads "I(n)" followed by "*".
func (p *parser) identity(scale float64) (Coefficient, error) {
	p.next()
	if _, err := p.expect('(', `"("`); err != nil {
		return Coefficient{}, err
	}
	t, err := p.expect(scanner.Int, "identity order")
	if err != nil {
		return Coefficient{}, err
	}
	n, err := strconv.Atoi(t.text)
	if err != nil {
		return Coefficient{}, errorf(t.pos, "bad identity order %s", t.text)
	}
	if _, err := p.expect(')', `")"`); err != nil {
		return Coefficient{}, err
	}
	if _, err := p.expect('*', `"*"`); err != nil {
		return Coefficient{}, err
	}
	return Coefficient{Kind: CoeffIdentity, Scale: scale, Order: n}, nil
}

func (p *parser) number() (float64, error) {
	t := p.next()
	sign := 1.0
	if t.kind == '-' {
		sign = -1
		t = p.next()
	}
	if t.kind != scanner.Int && t.kind != scanner.Float {
		return 0, errorf(t.pos, "expected number, got %s", t)
	}
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return 0, errorf(t.pos, "bad number %s", t.text)
	}
	return sign * v, nil
}

// bracket reads a matrix literal: rows split by ";", entries by "," or spaces.
func (p *parser) bracket() (*mat.Dense, error) {
	open := p.next()
	var (
		rows [][]float64
		row  []float64
	)
	for {
		switch t := p.peek(); t.kind {
		case ']':
			p.next()
			if len(row) > 0 || len(rows) > 0 {
				rows = append(rows, row)
			}
			m, err := linalg.FromRows(rows)
			if err != nil {
				return nil, errorf(open.pos, "%v", err)
			}
			return m, nil
		case ';':
			p.next()
			rows = append(rows, row)
			row = nil
		case ',':
			p.next()
		case scanner.EOF:
			return nil, errorf(open.pos, "unterminated matrix literal")
		default:
			v, err := p.number()
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
	}
}

// asVector accepts a single row or a single column.
func asVector(m *mat.Dense) (*mat.VecDense, bool) {
	r, c := m.Dims()
	switch {
	case r == 1:
		return mat.VecDenseCopyOf(m.RowView(0)), true
	case c == 1:
		return mat.VecDenseCopyOf(m.ColView(0)), true
	default:
		return nil, false
	}
}

// normalize collects terms into A·x [+ B·u] [+ c].
func (p *parser) normalize(terms []term) (*NormalForm, error) {
	nf := &NormalForm{State: p.state, Input: p.input}
	var hasA bool
	for _, t := range terms {
		switch {
		case t.vec != nil:
			if nf.C != nil {
				return nil, errorf(t.pos, "more than one constant term")
			}
			nf.C = t.vec
		case t.symbol == p.state:
			if hasA {
				return nil, errorf(t.pos, "%q appears in more than one term", t.symbol)
			}
			nf.A, hasA = t.coeff, true
		case p.input != "" && t.symbol == p.input:
			if nf.B != nil {
				return nil, errorf(t.pos, "%q appears in more than one term", t.symbol)
			}
			c := t.coeff
			nf.B = &c
		default:
			return nil, errorf(t.pos, "term is neither a constant nor in %q", p.state)
		}
	}
	if !hasA {
		return nil, errorf(1, "no term in %q", p.state)
	}
	if err := checkShapes(nf); err != nil {
		return nil, err
	}
	return nf, nil
}

// checkShapes compares the row counts the expression fixes.
func checkShapes(nf *NormalForm) error {
	rows, _, ok := nf.A.Dims()
	if !ok {
		return nil
	}
	if nf.B != nil {
		if r, _, ok := nf.B.Dims(); ok && r != rows {
			return &dynamo.ShapeError{Field: fmt.Sprintf("%s coefficient rows", nf.Input), Want: rows, Got: r, Wrapped: dynamo.ErrShapeMismatch}
		}
	}
	if nf.C != nil && nf.C.Len() != rows {
		return &dynamo.ShapeError{Field: "constant term", Want: rows, Got: nf.C.Len(), Wrapped: dynamo.ErrShapeMismatch}
	}
	return nil
}
