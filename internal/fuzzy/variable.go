package fuzzy

import "fmt"

// Universe constants for the shared [0, 10] discretization. Every linguistic
// variable shares this grid so pointwise min/max between consequent sets of
// different rules stay well-defined.
const (
	UniverseMin    = 0.0
	UniverseMax    = 10.0
	UniversePoints = 101
)

// NewUniverse returns the shared 101-point grid over [0, 10] (step 0.1).
func NewUniverse() []float64 {
	u := make([]float64, UniversePoints)
	step := (UniverseMax - UniverseMin) / float64(UniversePoints-1)
	for i := range u {
		u[i] = UniverseMin + float64(i)*step
	}
	return u
}

// Term is a named fuzzy set attached to a variable.
type Term struct {
	Label string
	MF    Trimf
}

// Variable is a linguistic variable: a name plus its named terms over the
// shared universe. Built once at startup and read-only afterwards.
type Variable struct {
	Name  string
	terms map[string]Term
	order []string
}

// NewVariable creates an empty variable.
func NewVariable(name string) *Variable {
	return &Variable{
		Name:  name,
		terms: make(map[string]Term),
	}
}

// AddTerm attaches a term to the variable. Labels are unique per variable.
func (v *Variable) AddTerm(label string, mf Trimf) error {
	if _, ok := v.terms[label]; ok {
		return fmt.Errorf("variable %s: duplicate term %q", v.Name, label)
	}
	v.terms[label] = Term{Label: label, MF: mf}
	v.order = append(v.order, label)
	return nil
}

// Term returns the named term.
func (v *Variable) Term(label string) (Term, bool) {
	t, ok := v.terms[label]
	return t, ok
}

// Terms lists the variable's terms in insertion order.
func (v *Variable) Terms() []Term {
	out := make([]Term, 0, len(v.order))
	for _, label := range v.order {
		out = append(out, v.terms[label])
	}
	return out
}

// Standard breakpoints shared by every input variable. These are a
// compatibility contract: they determine every rule's firing behavior and
// must be reproduced exactly.
var standardTerms = []Term{
	{Label: "low", MF: NewTrimf(0, 0, 4)},
	{Label: "medium", MF: NewTrimf(2, 5, 8)},
	{Label: "high", MF: NewTrimf(6, 10, 10)},
}

// Output breakpoints give the middle band wider coverage than the inputs.
var outputTerms = []Term{
	{Label: "low", MF: NewTrimf(0, 0, 4)},
	{Label: "moderate", MF: NewTrimf(3, 5, 7)},
	{Label: "high", MF: NewTrimf(6, 10, 10)},
}

// NewInputVariable creates a variable carrying the standard
// low/medium/high input terms.
func NewInputVariable(name string) *Variable {
	v := NewVariable(name)
	for _, t := range standardTerms {
		v.terms[t.Label] = t
		v.order = append(v.order, t.Label)
	}
	return v
}

// NewOutputVariable creates a variable carrying the low/moderate/high
// output terms.
func NewOutputVariable(name string) *Variable {
	v := NewVariable(name)
	for _, t := range outputTerms {
		v.terms[t.Label] = t
		v.order = append(v.order, t.Label)
	}
	return v
}
