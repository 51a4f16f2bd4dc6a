// Package expr compiles and evaluates the conditional statements used
// to filter data collections.
//
// A statement is a boolean expression over single-letter variables
// assigned in order a, b, c, … — one per collection, in argument
// order. A single-collection statement uses only "a":
//
//	st, err := expr.Parse("a > 25 and a % 5 == 0", 1)
//	keep, err := st.Eval([]float64{30})
//
// The grammar is deliberately restricted: numeric literals, the
// permitted variables, comparisons, arithmetic, logical operators and
// parentheses. There is no function-call or indexing syntax and no
// dynamic code-execution primitive of any kind; a statement that
// references an identifier outside the permitted variable set is
// rejected at parse time with an error naming the allowed variables.
package expr
