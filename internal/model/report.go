package model

import "time"

// QualityReport is the structured outcome of validating one script. It is
// computed once per document and never mutated; re-validation produces a new
// report. HostBalanceRatio is nil when the script has no spoken words at all,
// in which case BalanceUnevaluable is set and Pass is forced false.
type QualityReport struct {
	HostBalanceRatio             *float64       `json:"host_balance_ratio"`
	BalanceUnevaluable           bool           `json:"balance_unevaluable"`
	RepeatedPhrases              map[string]int `json:"repeated_phrases"`
	TerminologyCounts            map[string]int `json:"terminology_counts"`
	ConsecutiveSpeakerViolations int            `json:"consecutive_speaker_violations"`
	EstimatedRuntimeMinutes      float64        `json:"estimated_runtime_minutes"`
	FactualFlags                 []string       `json:"factual_flags,omitempty"`
	OverallScore                 float64        `json:"overall_score"`
	Pass                         bool           `json:"pass"`
}

// ScriptReport is a QualityReport as stored, tied to the script it grades.
type ScriptReport struct {
	ID        int64
	ScriptID  int64
	Report    QualityReport
	CreatedAt time.Time
}
