package expr

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent // a single variable letter
	tokAnd
	tokOr
	tokNot
	tokEq  // ==
	tokNeq // !=
	tokLt  // <
	tokLte // <=
	tokGt  // >
	tokGte // >=
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// keywords are the textual logical operators. The word spellings are
// the primary form; scan also accepts the symbol forms &&, || and !.
var keywords = map[string]tokenKind{
	"and": tokAnd,
	"or":  tokOr,
	"not": tokNot,
}

// scan tokenizes a conditional statement. Any character outside the
// restricted grammar is rejected here, before evaluation can occur.
func scan(statement string) ([]token, error) {
	var tokens []token
	src := statement
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			for i < len(src) && (src[i] >= '0' && src[i] <= '9' || src[i] == '.') {
				i++
			}
			num, err := strconv.ParseFloat(src[start:i], 64)
			if err != nil {
				return nil, errors.Newf("invalid number %q at position %d", src[start:i], start)
			}
			tokens = append(tokens, token{kind: tokNumber, text: src[start:i], num: num, pos: start})
		case unicode.IsLetter(rune(c)):
			start := i
			for i < len(src) && unicode.IsLetter(rune(src[i])) {
				i++
			}
			word := strings.ToLower(src[start:i])
			if kind, ok := keywords[word]; ok {
				tokens = append(tokens, token{kind: kind, text: word, pos: start})
			} else {
				tokens = append(tokens, token{kind: tokIdent, text: word, pos: start})
			}
		default:
			start := i
			two := ""
			if i+1 < len(src) {
				two = src[i : i+2]
			}
			switch {
			case two == "==":
				tokens = append(tokens, token{kind: tokEq, text: two, pos: start})
				i += 2
			case two == "!=":
				tokens = append(tokens, token{kind: tokNeq, text: two, pos: start})
				i += 2
			case two == "<=":
				tokens = append(tokens, token{kind: tokLte, text: two, pos: start})
				i += 2
			case two == ">=":
				tokens = append(tokens, token{kind: tokGte, text: two, pos: start})
				i += 2
			case two == "&&":
				tokens = append(tokens, token{kind: tokAnd, text: two, pos: start})
				i += 2
			case two == "||":
				tokens = append(tokens, token{kind: tokOr, text: two, pos: start})
				i += 2
			case c == '<':
				tokens = append(tokens, token{kind: tokLt, text: "<", pos: start})
				i++
			case c == '>':
				tokens = append(tokens, token{kind: tokGt, text: ">", pos: start})
				i++
			case c == '!':
				tokens = append(tokens, token{kind: tokNot, text: "!", pos: start})
				i++
			case c == '+':
				tokens = append(tokens, token{kind: tokPlus, text: "+", pos: start})
				i++
			case c == '-':
				tokens = append(tokens, token{kind: tokMinus, text: "-", pos: start})
				i++
			case c == '*':
				tokens = append(tokens, token{kind: tokStar, text: "*", pos: start})
				i++
			case c == '/':
				tokens = append(tokens, token{kind: tokSlash, text: "/", pos: start})
				i++
			case c == '%':
				tokens = append(tokens, token{kind: tokPercent, text: "%", pos: start})
				i++
			case c == '(':
				tokens = append(tokens, token{kind: tokLParen, text: "(", pos: start})
				i++
			case c == ')':
				tokens = append(tokens, token{kind: tokRParen, text: ")", pos: start})
				i++
			default:
				return nil, errors.Newf("unexpected character %q at position %d", string(c), start)
			}
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(src)})
	return tokens, nil
}
