// Package quality decides whether a generated broadcast script meets the
// show's numeric quality bar: host speaking-time balance, phrase repetition,
// terminology overuse, consecutive-speaker runs and estimated runtime. The
// whole package is pure in-memory text analysis with no I/O; independent
// callers can validate scripts concurrently without coordination.
package quality

import "github.com/csaunders4z/market-voice-sub001/internal/model"

// Validator grades parsed scripts against a fixed RuleConfig.
type Validator struct {
	cfg RuleConfig
}

// NewValidator checks the supplied config for internal consistency and
// returns a ConfigError if it is inconsistent. An empty tracked-terms list
// falls back to the defaults.
func NewValidator(cfg RuleConfig) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.TrackedTerms) == 0 {
		cfg.TrackedTerms = DefaultTrackedTerms
	}
	if cfg.Weights == (ScoreWeights{}) {
		cfg.Weights = DefaultScoreWeights()
	}
	return &Validator{cfg: cfg}, nil
}

// Rules returns the config the validator was built with.
func (v *Validator) Rules() RuleConfig {
	return v.cfg
}

// Evaluate computes a QualityReport for a parsed script. It is deterministic
// and side-effect-free: the same document, config and factual flags always
// yield the same report. Factual-accuracy flags come from an external checker
// when one runs; any flag forces Pass to false.
func (v *Validator) Evaluate(doc *model.ScriptDocument, factualFlags []string) *model.QualityReport {
	var words []string
	for _, seg := range doc.Segments {
		words = append(words, tokenize(seg.Text)...)
	}

	hostA, hostB := hostWordCounts(doc)

	report := &model.QualityReport{
		RepeatedPhrases:              repeatedPhrases(words, v.cfg.MaxPhraseRepeat),
		TerminologyCounts:            terminologyCounts(words, v.cfg.TrackedTerms),
		ConsecutiveSpeakerViolations: consecutiveViolations(doc, v.cfg.MaxConsecutiveStocksPerHost),
		EstimatedRuntimeMinutes:      estimatedRuntime(len(words), v.cfg.WordsPerMinute),
		FactualFlags:                 append([]string(nil), factualFlags...),
	}

	report.HostBalanceRatio = balanceRatio(hostA, hostB)
	report.BalanceUnevaluable = report.HostBalanceRatio == nil

	scoreReport(report, v.cfg)
	return report
}

// ValidateText parses raw script text and evaluates it in one step.
func (v *Validator) ValidateText(raw string, parser ParserConfig, factualFlags []string) (*model.QualityReport, error) {
	doc, err := ParseScript(raw, parser)
	if err != nil {
		return nil, err
	}
	return v.Evaluate(doc, factualFlags), nil
}
