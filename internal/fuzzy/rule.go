package fuzzy

import (
	"fmt"
	"math"
)

// Expr is an antecedent expression over variable/term references. The three
// variants (Leaf, And, Or) form a small tagged tree evaluated recursively;
// there is no NOT and rules carry no explicit weight.
type Expr interface {
	// Degree evaluates the expression against a crisp input vector keyed by
	// variable name. Missing variables read as 0.
	Degree(inputs map[string]float64) float64
	fmt.Stringer
}

// Leaf references exactly one (variable, term) pair.
type Leaf struct {
	Variable string
	Term     Term
}

func (l Leaf) Degree(inputs map[string]float64) float64 {
	return l.Term.MF.Evaluate(inputs[l.Variable])
}

func (l Leaf) String() string {
	return l.Variable + "." + l.Term.Label
}

// And combines two expressions by pointwise min.
type And struct {
	Left, Right Expr
}

func (a And) Degree(inputs map[string]float64) float64 {
	return math.Min(a.Left.Degree(inputs), a.Right.Degree(inputs))
}

func (a And) String() string {
	return "(" + a.Left.String() + " AND " + a.Right.String() + ")"
}

// Or combines two expressions by pointwise max.
type Or struct {
	Left, Right Expr
}

func (o Or) Degree(inputs map[string]float64) float64 {
	return math.Max(o.Left.Degree(inputs), o.Right.Degree(inputs))
}

func (o Or) String() string {
	return "(" + o.Left.String() + " OR " + o.Right.String() + ")"
}

// Rule pairs an antecedent with a single consequent term on the output
// variable. Implicit weight 1.
type Rule struct {
	Antecedent Expr
	Consequent Term
}

func (r Rule) String() string {
	return r.Antecedent.String() + " => " + r.Consequent.Label
}
