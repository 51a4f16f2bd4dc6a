package expr

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// maxVars is the number of single-letter variable names available.
const maxVars = 26

// Statement is a compiled conditional statement over a fixed ordered
// set of variables named a, b, c, … — one per data collection, in
// argument order. A Statement is immutable and safe to evaluate
// repeatedly.
type Statement struct {
	source string
	root   node
	vars   []string
}

// Vars returns the ordered variable names the statement may reference.
func (s *Statement) Vars() []string {
	vars := make([]string, len(s.vars))
	copy(vars, s.vars)
	return vars
}

// String returns the original statement text.
func (s *Statement) String() string { return s.source }

// VarNames returns the permitted ordered variable names for a given
// number of collections (e.g. 3 -> ["a", "b", "c"]).
func VarNames(numVars int) []string {
	vars := make([]string, numVars)
	for i := range vars {
		vars[i] = string(rune('a' + i))
	}
	return vars
}

// Parse compiles a conditional statement for the given number of bound
// variables. The statement grammar is restricted to numeric literals,
// the permitted variables, comparisons (== != < <= > >=), arithmetic
// (+ - * / %), logical operators (and, or, not — or &&, ||, !) and
// parentheses. A statement referencing any other identifier fails
// before any evaluation occurs, naming the allowed variables.
func Parse(statement string, numVars int) (*Statement, error) {
	if numVars < 1 || numVars > maxVars {
		return nil, errors.Newf("number of variables must be between 1 and %d, got %d", maxVars, numVars)
	}
	tokens, err := scan(statement)
	if err != nil {
		return nil, invalidStatement(statement, numVars, err)
	}
	p := &parser{tokens: tokens, numVars: numVars}
	root, err := p.parseOr()
	if err != nil {
		return nil, invalidStatement(statement, numVars, err)
	}
	if p.peek().kind != tokEOF {
		return nil, invalidStatement(statement, numVars,
			errors.Newf("unexpected %q at position %d", p.peek().text, p.peek().pos))
	}
	return &Statement{source: statement, root: root, vars: VarNames(numVars)}, nil
}

func invalidStatement(statement string, numVars int, cause error) error {
	return errors.Wrapf(cause,
		"invalid conditional statement %q: variables must be named as follows: %s",
		statement, strings.Join(VarNames(numVars), ", "))
}

// Eval evaluates the statement for one sample, binding vars[0] to "a",
// vars[1] to "b" and so on. The result of the whole statement must be
// boolean.
func (s *Statement) Eval(vars []float64) (bool, error) {
	if len(vars) != len(s.vars) {
		return false, errors.Newf("statement %q binds %d variables, got %d values",
			s.source, len(s.vars), len(vars))
	}
	v, err := s.root.eval(vars)
	if err != nil {
		return false, errors.Wrapf(err, "evaluating statement %q", s.source)
	}
	if !v.isBool {
		return false, errors.Newf("statement %q is not a boolean expression", s.source)
	}
	return v.b, nil
}

// value is the result of evaluating a subexpression: either a number
// or a boolean.
type value struct {
	num    float64
	b      bool
	isBool bool
}

type node interface {
	eval(vars []float64) (value, error)
}

type numberNode struct{ num float64 }

func (n numberNode) eval([]float64) (value, error) {
	return value{num: n.num}, nil
}

type varNode struct {
	index int
}

func (n varNode) eval(vars []float64) (value, error) {
	return value{num: vars[n.index]}, nil
}

type unaryNode struct {
	op   tokenKind // tokMinus or tokNot
	expr node
}

func (n unaryNode) eval(vars []float64) (value, error) {
	v, err := n.expr.eval(vars)
	if err != nil {
		return value{}, err
	}
	switch n.op {
	case tokMinus:
		if v.isBool {
			return value{}, errors.New("cannot negate a boolean")
		}
		return value{num: -v.num}, nil
	default: // tokNot
		if !v.isBool {
			return value{}, errors.New(`operand of "not" must be boolean`)
		}
		return value{b: !v.b, isBool: true}, nil
	}
}

type binaryNode struct {
	op          tokenKind
	left, right node
}

func (n binaryNode) eval(vars []float64) (value, error) {
	l, err := n.left.eval(vars)
	if err != nil {
		return value{}, err
	}
	// and/or short-circuit on the left operand.
	switch n.op {
	case tokAnd, tokOr:
		if !l.isBool {
			return value{}, errors.Newf("operands of %q must be boolean", n.opText())
		}
		if n.op == tokAnd && !l.b {
			return value{b: false, isBool: true}, nil
		}
		if n.op == tokOr && l.b {
			return value{b: true, isBool: true}, nil
		}
		r, err := n.right.eval(vars)
		if err != nil {
			return value{}, err
		}
		if !r.isBool {
			return value{}, errors.Newf("operands of %q must be boolean", n.opText())
		}
		return value{b: r.b, isBool: true}, nil
	}

	r, err := n.right.eval(vars)
	if err != nil {
		return value{}, err
	}
	if l.isBool || r.isBool {
		return value{}, errors.Newf("operands of %q must be numeric", n.opText())
	}
	switch n.op {
	case tokEq:
		return value{b: l.num == r.num, isBool: true}, nil
	case tokNeq:
		return value{b: l.num != r.num, isBool: true}, nil
	case tokLt:
		return value{b: l.num < r.num, isBool: true}, nil
	case tokLte:
		return value{b: l.num <= r.num, isBool: true}, nil
	case tokGt:
		return value{b: l.num > r.num, isBool: true}, nil
	case tokGte:
		return value{b: l.num >= r.num, isBool: true}, nil
	case tokPlus:
		return value{num: l.num + r.num}, nil
	case tokMinus:
		return value{num: l.num - r.num}, nil
	case tokStar:
		return value{num: l.num * r.num}, nil
	case tokSlash:
		if r.num == 0 {
			return value{}, errors.New("division by zero")
		}
		return value{num: l.num / r.num}, nil
	case tokPercent:
		if r.num == 0 {
			return value{}, errors.New("modulo by zero")
		}
		return value{num: floorMod(l.num, r.num)}, nil
	default:
		return value{}, errors.Newf("unsupported operator %q", n.opText())
	}
}

func (n binaryNode) opText() string {
	switch n.op {
	case tokAnd:
		return "and"
	case tokOr:
		return "or"
	case tokEq:
		return "=="
	case tokNeq:
		return "!="
	case tokLt:
		return "<"
	case tokLte:
		return "<="
	case tokGt:
		return ">"
	case tokGte:
		return ">="
	case tokPlus:
		return "+"
	case tokMinus:
		return "-"
	case tokStar:
		return "*"
	case tokSlash:
		return "/"
	case tokPercent:
		return "%"
	default:
		return "?"
	}
}

// floorMod is the floored modulo: the result takes the sign of the
// divisor, so cyclic statements like "a % 24 == 0" behave the same
// for negative operands.
func floorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

type parser struct {
	tokens  []token
	pos     int
	numVars int
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: tokOr, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: tokAnd, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseNot() (node, error) {
	if p.peek().kind == tokNot {
		p.next()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: tokNot, expr: operand}, nil
	}
	return p.parseComparison()
}

func isComparison(kind tokenKind) bool {
	switch kind {
	case tokEq, tokNeq, tokLt, tokLte, tokGt, tokGte:
		return true
	}
	return false
}

func (p *parser) parseComparison() (node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if !isComparison(p.peek().kind) {
		return left, nil
	}
	op := p.next()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if isComparison(p.peek().kind) {
		return nil, errors.Newf(
			"chained comparisons are not supported; split them with \"and\" (position %d)",
			p.peek().pos)
	}
	return binaryNode{op: op.kind, left: left, right: right}, nil
}

func (p *parser) parseAdditive() (node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokPlus || p.peek().kind == tokMinus {
		op := p.next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op.kind, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokStar || p.peek().kind == tokSlash || p.peek().kind == tokPercent {
		op := p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op.kind, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.peek().kind == tokMinus {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: tokMinus, expr: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return numberNode{num: t.num}, nil
	case tokIdent:
		if len(t.text) != 1 || t.text[0] < 'a' || int(t.text[0]-'a') >= p.numVars {
			return nil, errors.Newf("unknown variable %q", t.text)
		}
		return varNode{index: int(t.text[0] - 'a')}, nil
	case tokLParen:
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, errors.Newf("missing closing parenthesis at position %d", p.peek().pos)
		}
		p.next()
		return inner, nil
	case tokEOF:
		return nil, errors.New("unexpected end of statement")
	default:
		return nil, errors.Newf("unexpected %q at position %d", t.text, t.pos)
	}
}
