package quality

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/csaunders4z/market-voice-sub001/internal/model"
	"github.com/go-playground/assert/v2"
)

func uniqueWords(prefix string, n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return strings.Join(words, " ")
}

// balancedShowDoc builds an evaluable document with the given host texts and
// a clean segment flow.
func balancedShowDoc(hostAText, hostBText string) *model.ScriptDocument {
	return &model.ScriptDocument{
		LeadHost: "Suzanne",
		CoHost:   "Marcus",
		Segments: []model.Segment{
			{Speaker: model.HostA, Kind: model.KindIntro, Text: hostAText},
			{Speaker: model.HostB, Kind: model.KindWinner, Text: hostBText},
			{Speaker: model.HostA, Kind: model.KindOutro, Text: ""},
		},
	}
}

func mustValidator(t *testing.T, cfg RuleConfig) *Validator {
	t.Helper()
	v, err := NewValidator(cfg)
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	return v
}

func TestEvaluate_EvenSplitHasNoBalancePenalty(t *testing.T) {
	doc := balancedShowDoc(uniqueWords("alpha", 750), uniqueWords("beta", 750))
	v := mustValidator(t, DefaultRules())

	report := v.Evaluate(doc, nil)

	assert.NotEqual(t, nil, report.HostBalanceRatio)
	assert.Equal(t, 0.5, *report.HostBalanceRatio)
	assert.Equal(t, false, report.BalanceUnevaluable)
	assert.Equal(t, 100.0, report.OverallScore)
	assert.Equal(t, true, report.Pass)
}

func TestEvaluate_SingleRepeatedPhraseViolation(t *testing.T) {
	// Exactly one repeated phrase, three occurrences, everything else clean:
	// the score drops by exactly one phrase penalty.
	const phrase = "the stock price rose"
	hostAText := phrase + " " + uniqueWords("alpha", 742) + " " + phrase
	hostBText := uniqueWords("beta", 746) + " " + phrase

	cfg := DefaultRules()
	v := mustValidator(t, cfg)

	report := v.Evaluate(balancedShowDoc(hostAText, hostBText), nil)

	assert.Equal(t, 1, len(report.RepeatedPhrases))
	assert.Equal(t, 3, report.RepeatedPhrases[phrase])
	assert.Equal(t, 100.0-cfg.Weights.PhrasePenalty, report.OverallScore)
	assert.Equal(t, true, report.Pass)
}

func TestEvaluate_ZeroWordScript(t *testing.T) {
	doc := balancedShowDoc("", "")
	v := mustValidator(t, DefaultRules())

	report := v.Evaluate(doc, nil)

	assert.Equal(t, (*float64)(nil), report.HostBalanceRatio)
	assert.Equal(t, true, report.BalanceUnevaluable)
	assert.Equal(t, false, report.Pass)
	assert.Equal(t, 0.0, report.EstimatedRuntimeMinutes)
	if report.OverallScore < 0 || report.OverallScore > 100 {
		t.Fatalf("score out of range: %f", report.OverallScore)
	}
}

func TestEvaluate_PathologicalRepetitionStaysClamped(t *testing.T) {
	repeated := strings.Repeat("buy this stock right now ", 300)
	doc := balancedShowDoc(repeated, "")
	v := mustValidator(t, DefaultRules())

	report := v.Evaluate(doc, nil)

	if report.OverallScore < 0 || report.OverallScore > 100 {
		t.Fatalf("score out of range: %f", report.OverallScore)
	}
	assert.Equal(t, false, report.Pass)
	assert.NotEqual(t, 0, len(report.RepeatedPhrases))
}

func TestEvaluate_Deterministic(t *testing.T) {
	const phrase = "the stock price rose"
	doc := balancedShowDoc(
		phrase+" "+uniqueWords("alpha", 742)+" "+phrase,
		uniqueWords("beta", 746)+" "+phrase,
	)
	v := mustValidator(t, DefaultRules())

	first := v.Evaluate(doc, nil)
	second := v.Evaluate(doc, nil)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reports differ:\n%#v\n%#v", first, second)
	}
}

func TestEvaluate_BalanceDeviationPenalty(t *testing.T) {
	// 70/30 split: 0.15 over the 0.55 ceiling, roughly 15 points off.
	doc := balancedShowDoc(uniqueWords("alpha", 1050), uniqueWords("beta", 450))
	v := mustValidator(t, DefaultRules())

	report := v.Evaluate(doc, nil)

	assert.Equal(t, 0.7, *report.HostBalanceRatio)
	if report.OverallScore < 84.9 || report.OverallScore > 85.1 {
		t.Fatalf("expected score near 85, got %f", report.OverallScore)
	}
	assert.Equal(t, true, report.Pass)
}

func TestEvaluate_RuntimeOutsideRange(t *testing.T) {
	// 750 words at 150 wpm is 5 minutes, 5 under the floor of 10.
	doc := balancedShowDoc(uniqueWords("alpha", 375), uniqueWords("beta", 375))
	cfg := DefaultRules()
	v := mustValidator(t, cfg)

	report := v.Evaluate(doc, nil)

	assert.Equal(t, 5.0, report.EstimatedRuntimeMinutes)
	assert.Equal(t, 100.0-5*cfg.Weights.RuntimePenalty, report.OverallScore)
}

func TestEvaluate_FactualFlagsForcePassFalse(t *testing.T) {
	doc := balancedShowDoc(uniqueWords("alpha", 750), uniqueWords("beta", 750))
	v := mustValidator(t, DefaultRules())

	report := v.Evaluate(doc, []string{"stale closing price for NVDA"})

	assert.Equal(t, 100.0, report.OverallScore)
	assert.Equal(t, false, report.Pass)
}

func TestEvaluate_ConsecutiveRunPenalty(t *testing.T) {
	segs := []model.Segment{{Speaker: model.HostA, Kind: model.KindIntro, Text: uniqueWords("alpha", 750)}}
	for i := 0; i < 4; i++ {
		segs = append(segs, model.Segment{Speaker: model.HostB, Kind: model.KindWinner, Text: fmt.Sprintf("beta%d", i)})
	}
	segs = append(segs, model.Segment{
		Speaker: model.HostB, Kind: model.KindOutro, Text: uniqueWords("gamma", 746),
	})
	doc := &model.ScriptDocument{Segments: segs}

	cfg := DefaultRules()
	v := mustValidator(t, cfg)

	report := v.Evaluate(doc, nil)

	assert.Equal(t, 1, report.ConsecutiveSpeakerViolations)
	assert.Equal(t, 100.0-cfg.Weights.ConsecutivePenalty, report.OverallScore)
}

func TestNewValidator_InconsistentShares(t *testing.T) {
	cfg := DefaultRules()
	cfg.MinHostShare = 0.6
	cfg.MaxHostShare = 0.4

	_, err := NewValidator(cfg)

	var cfgErr *ConfigError
	assert.Equal(t, true, errors.As(err, &cfgErr))
}

func TestNewValidator_ShareOutOfRange(t *testing.T) {
	cfg := DefaultRules()
	cfg.MaxHostShare = 1.2

	_, err := NewValidator(cfg)

	var cfgErr *ConfigError
	assert.Equal(t, true, errors.As(err, &cfgErr))
}

func TestValidateText_EndToEnd(t *testing.T) {
	raw := "Suzanne: Welcome to Market Voices.\n" +
		"[WINNERS]\n" +
		"Suzanne: Nvidia rose on chip demand.\n" +
		"Marcus: Tesla gained on delivery numbers.\n" +
		"[LOSERS]\n" +
		"Marcus: Boeing slid after the report.\n" +
		"Suzanne: Thanks for watching."

	v := mustValidator(t, DefaultRules())

	report, err := v.ValidateText(raw, testHosts, nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, false, report.BalanceUnevaluable)
	// A handful of sentences is nowhere near the runtime floor.
	assert.Equal(t, false, report.Pass)
}

func TestValidateText_ParseErrorSurfaced(t *testing.T) {
	v := mustValidator(t, DefaultRules())

	_, err := v.ValidateText("no labels anywhere", testHosts, nil)

	var parseErr *ParseError
	assert.Equal(t, true, errors.As(err, &parseErr))
}
