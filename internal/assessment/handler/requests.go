package handler

import (
	"fmt"

	"serenity/internal/assessment"
	dErrors "serenity/pkg/domain-errors"
)

// maxTextLength bounds the optional free-text field.
const maxTextLength = 4000

// EvaluateRequest is the HTTP request body for POST /assessment/evaluate.
// Missing input keys default to 0.
type EvaluateRequest struct {
	Inputs   map[string]float64 `json:"inputs"`
	Suicidal float64            `json:"suicidal"`
	SelfHarm float64            `json:"self_harm"`
	Text     string             `json:"text"`

	// Parsed values (populated by Validate)
	parsedInput assessment.Input
}

// inputFields maps wire keys to their Input struct destinations.
var inputFields = map[string]func(*assessment.Input, float64){
	assessment.VarHappiness:     func(in *assessment.Input, v float64) { in.Happiness = v },
	assessment.VarAnxiety:       func(in *assessment.Input, v float64) { in.Anxiety = v },
	assessment.VarSadness:       func(in *assessment.Input, v float64) { in.Sadness = v },
	assessment.VarIrritability:  func(in *assessment.Input, v float64) { in.Irritability = v },
	assessment.VarCalmness:      func(in *assessment.Input, v float64) { in.Calmness = v },
	assessment.VarStress:        func(in *assessment.Input, v float64) { in.Stress = v },
	assessment.VarSleepQuality:  func(in *assessment.Input, v float64) { in.SleepQuality = v },
	assessment.VarEnergy:        func(in *assessment.Input, v float64) { in.Energy = v },
	assessment.VarMotivation:    func(in *assessment.Input, v float64) { in.Motivation = v },
	assessment.VarConcentration: func(in *assessment.Input, v float64) { in.Concentration = v },
	assessment.VarAppetite:      func(in *assessment.Input, v float64) { in.Appetite = v },
	assessment.VarSocial:        func(in *assessment.Input, v float64) { in.Social = v },
	assessment.VarWorkload:      func(in *assessment.Input, v float64) { in.Workload = v },
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *EvaluateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	if len(r.Text) > maxTextLength {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("text must be at most %d characters", maxTextLength))
	}

	var in assessment.Input
	for key, value := range r.Inputs {
		set, ok := inputFields[key]
		if !ok {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("unknown input %q", key))
		}
		if value < 0 || value > 10 {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("input %q must be between 0 and 10", key))
		}
		set(&in, value)
	}

	if r.Suicidal < 0 || r.Suicidal > 10 {
		return dErrors.New(dErrors.CodeValidation, "suicidal must be between 0 and 10")
	}
	if r.SelfHarm < 0 || r.SelfHarm > 10 {
		return dErrors.New(dErrors.CodeValidation, "self_harm must be between 0 and 10")
	}

	in.Suicidal = r.Suicidal
	in.SelfHarm = r.SelfHarm
	in.Text = r.Text

	r.parsedInput = in
	return nil
}

// ParsedInput returns the validated assessment input.
func (r *EvaluateRequest) ParsedInput() assessment.Input {
	return r.parsedInput
}
