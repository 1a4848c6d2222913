package assessment

import (
	"fmt"

	"serenity/internal/fuzzy"
)

// distress output terms, used as rule consequents.
const (
	distressLow      = "low"
	distressModerate = "moderate"
	distressHigh     = "high"
)

// InputVariables builds the thirteen input variables with the standard
// low/medium/high terms, keyed by name.
func InputVariables() map[string]*fuzzy.Variable {
	names := []string{
		VarHappiness, VarAnxiety, VarSadness, VarIrritability, VarCalmness,
		VarStress, VarSleepQuality, VarEnergy, VarMotivation, VarConcentration,
		VarAppetite, VarSocial, VarWorkload,
	}
	vars := make(map[string]*fuzzy.Variable, len(names))
	for _, name := range names {
		vars[name] = fuzzy.NewInputVariable(name)
	}
	return vars
}

// NewDistressRules builds the full distress rule base: ten hand-authored
// complex rules encoding compound clinical heuristics, then twenty-six
// single-antecedent baseline rules so every variable has monotonic coverage
// even when no complex rule fires. Construction order is preserved for
// diagnostics; aggregation itself is order-independent.
func NewDistressRules() []fuzzy.Rule {
	vars := InputVariables()
	distress := fuzzy.NewOutputVariable("distress")

	leaf := func(variable, label string) fuzzy.Leaf {
		v, ok := vars[variable]
		if !ok {
			panic(fmt.Sprintf("distress rules: unknown variable %q", variable))
		}
		t, ok := v.Term(label)
		if !ok {
			panic(fmt.Sprintf("distress rules: variable %q has no term %q", variable, label))
		}
		return fuzzy.Leaf{Variable: variable, Term: t}
	}
	out := func(label string) fuzzy.Term {
		t, ok := distress.Term(label)
		if !ok {
			panic(fmt.Sprintf("distress rules: output has no term %q", label))
		}
		return t
	}
	and := func(left, right fuzzy.Expr) fuzzy.Expr { return fuzzy.And{Left: left, Right: right} }
	or := func(left, right fuzzy.Expr) fuzzy.Expr { return fuzzy.Or{Left: left, Right: right} }
	rule := func(antecedent fuzzy.Expr, consequent string) fuzzy.Rule {
		return fuzzy.Rule{Antecedent: antecedent, Consequent: out(consequent)}
	}

	rules := []fuzzy.Rule{
		// Complex multi-factor rules.
		rule(and(leaf(VarStress, "high"), leaf(VarSleepQuality, "low")), distressHigh),
		rule(and(leaf(VarAnxiety, "high"), leaf(VarConcentration, "low")), distressHigh),
		rule(and(and(leaf(VarSadness, "high"), leaf(VarMotivation, "low")), leaf(VarSocial, "low")), distressHigh),
		rule(and(and(leaf(VarWorkload, "high"), leaf(VarEnergy, "low")), leaf(VarStress, "high")), distressHigh),
		rule(and(and(leaf(VarIrritability, "high"), leaf(VarSleepQuality, "low")), leaf(VarStress, "high")), distressHigh),

		rule(and(and(leaf(VarHappiness, "high"), leaf(VarCalmness, "high")), leaf(VarStress, "low")), distressLow),
		rule(and(and(leaf(VarEnergy, "high"), leaf(VarMotivation, "high")), leaf(VarSleepQuality, "high")), distressLow),

		rule(and(leaf(VarAnxiety, "high"), leaf(VarSleepQuality, "low")), distressModerate),
		rule(and(leaf(VarSadness, "medium"), leaf(VarMotivation, "low")), distressModerate),
		rule(or(leaf(VarAppetite, "low"), leaf(VarAppetite, "high")), distressModerate),
	}

	// Baseline single-factor coverage.
	baseline := []struct {
		variable, term, consequent string
	}{
		{VarHappiness, "high", distressLow},
		{VarHappiness, "low", distressModerate},
		{VarAnxiety, "high", distressHigh},
		{VarAnxiety, "medium", distressModerate},
		{VarSadness, "high", distressHigh},
		{VarSadness, "medium", distressModerate},
		{VarIrritability, "high", distressHigh},
		{VarIrritability, "low", distressLow},
		{VarCalmness, "high", distressLow},
		{VarCalmness, "low", distressModerate},
		{VarStress, "high", distressHigh},
		{VarStress, "medium", distressModerate},
		{VarSleepQuality, "low", distressHigh},
		{VarSleepQuality, "high", distressLow},
		{VarEnergy, "low", distressHigh},
		{VarEnergy, "high", distressLow},
		{VarMotivation, "low", distressHigh},
		{VarMotivation, "high", distressLow},
		{VarConcentration, "low", distressHigh},
		{VarConcentration, "high", distressLow},
		{VarAppetite, "low", distressModerate},
		{VarAppetite, "high", distressModerate},
		{VarSocial, "low", distressModerate},
		{VarSocial, "high", distressLow},
		{VarWorkload, "high", distressHigh},
		{VarWorkload, "low", distressLow},
	}
	for _, b := range baseline {
		rules = append(rules, rule(leaf(b.variable, b.term), b.consequent))
	}

	return rules
}

// NewDistressEngine builds the shared inference engine over the distress
// rule base. Called once at startup; the engine is immutable afterwards.
func NewDistressEngine() (*fuzzy.Engine, error) {
	return fuzzy.NewEngine(NewDistressRules())
}
