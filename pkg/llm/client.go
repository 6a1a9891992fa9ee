package llm

import "time"

const promptVersion = "v2"

// MoverBrief is the daily-data slice of one mover handed to the model.
type MoverBrief struct {
	Symbol    string
	Company   string
	Price     float64
	ChangePct float64
	Headlines []string
}

// ScriptInput is everything the generator merges into the model prompt for
// one show.
type ScriptInput struct {
	AirDate       time.Time
	LeadHost      string
	CoHost        string
	TargetMinutes int
	Winners       []MoverBrief
	Losers        []MoverBrief
}

// ScriptResult is the raw generated script plus provenance.
type ScriptResult struct {
	Script        string
	ModelUsed     string
	PromptVersion string
}

// ScriptClient generates a full broadcast script from one day's input.
type ScriptClient interface {
	GenerateScript(input ScriptInput) (*ScriptResult, error)
}
