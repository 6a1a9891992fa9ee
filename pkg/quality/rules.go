package quality

import "time"

// DefaultTrackedTerms are the financial stock phrases counted for overuse.
var DefaultTrackedTerms = []string{
	"earnings per share",
	"price target",
	"market cap",
	"all-time high",
	"year over year",
	"analyst expectations",
	"trading volume",
}

// ScoreWeights are the penalty magnitudes applied by the aggregate scorer.
// The source rules give thresholds but not weights, so these are a starting
// point and deliberately configurable rather than contractual.
type ScoreWeights struct {
	PhrasePenalty      float64
	PhrasePenaltyCap   float64
	TermPenalty        float64
	TermPenaltyCap     float64
	BalancePenalty     float64 // points per unit of deviation outside the share band
	ConsecutivePenalty float64
	RuntimePenalty     float64 // points per minute outside the runtime band
	PassThreshold      float64
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		PhrasePenalty:      5,
		PhrasePenaltyCap:   30,
		TermPenalty:        3,
		TermPenaltyCap:     15,
		BalancePenalty:     100,
		ConsecutivePenalty: 8,
		RuntimePenalty:     5,
		PassThreshold:      80,
	}
}

// RuleConfig is the numeric quality policy a script is graded against. It is
// passed into the validator at call time; the validator reads no ambient
// state.
type RuleConfig struct {
	MaxPhraseRepeat             int
	MaxTermRepeat               int
	MinHostShare                float64
	MaxHostShare                float64
	MaxConsecutiveStocksPerHost int
	TargetRuntimeMinutes        float64
	MinRuntimeMinutes           float64
	MaxRuntimeMinutes           float64
	WordsPerMinute              float64 // professional newscast pace
	TrackedTerms                []string
	Weights                     ScoreWeights
}

func DefaultRules() RuleConfig {
	return RuleConfig{
		MaxPhraseRepeat:             2,
		MaxTermRepeat:               3,
		MinHostShare:                0.45,
		MaxHostShare:                0.55,
		MaxConsecutiveStocksPerHost: 3,
		TargetRuntimeMinutes:        15,
		MinRuntimeMinutes:           10,
		MaxRuntimeMinutes:           25,
		WordsPerMinute:              150,
		TrackedTerms:                DefaultTrackedTerms,
		Weights:                     DefaultScoreWeights(),
	}
}

// DefaultRulesFor returns the defaults with the weekday runtime target
// applied: Fridays run the short ten-minute show, every other day the full
// fifteen.
func DefaultRulesFor(day time.Weekday) RuleConfig {
	cfg := DefaultRules()
	if day == time.Friday {
		cfg.TargetRuntimeMinutes = 10
	}
	return cfg
}

// Validate checks the config for internal consistency and returns a
// ConfigError on the first violation. Host shares need not sum to 1 but both
// must lie in (0,1) with min <= max.
func (c RuleConfig) Validate() error {
	if c.MinHostShare <= 0 || c.MinHostShare >= 1 {
		return &ConfigError{Field: "min_host_share", Reason: "must lie in (0,1)"}
	}
	if c.MaxHostShare <= 0 || c.MaxHostShare >= 1 {
		return &ConfigError{Field: "max_host_share", Reason: "must lie in (0,1)"}
	}
	if c.MinHostShare > c.MaxHostShare {
		return &ConfigError{Field: "min_host_share", Reason: "exceeds max_host_share"}
	}
	if c.MinRuntimeMinutes > c.MaxRuntimeMinutes {
		return &ConfigError{Field: "min_runtime_minutes", Reason: "exceeds max_runtime_minutes"}
	}
	if c.MaxPhraseRepeat < 1 {
		return &ConfigError{Field: "max_phrase_repeat", Reason: "must be at least 1"}
	}
	if c.MaxTermRepeat < 1 {
		return &ConfigError{Field: "max_term_repeat", Reason: "must be at least 1"}
	}
	if c.MaxConsecutiveStocksPerHost < 1 {
		return &ConfigError{Field: "max_consecutive_stocks_per_host", Reason: "must be at least 1"}
	}
	if c.WordsPerMinute <= 0 {
		return &ConfigError{Field: "words_per_minute", Reason: "must be positive"}
	}
	return nil
}
