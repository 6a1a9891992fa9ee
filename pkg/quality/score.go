package quality

import "github.com/csaunders4z/market-voice-sub001/internal/model"

// scoreReport applies the penalty weights to an assembled report, filling in
// OverallScore and Pass. Starting from 100: capped per-violation penalties
// for repeated phrases and terminology overuse, a penalty proportional to how
// far the balance ratio falls outside the allowed band, a flat penalty per
// consecutive-speaker violation, and a per-minute penalty for runtime outside
// the allowed range. The result is clamped to [0, 100].
func scoreReport(r *model.QualityReport, cfg RuleConfig) {
	w := cfg.Weights
	score := 100.0

	phrasePen := float64(len(r.RepeatedPhrases)) * w.PhrasePenalty
	if phrasePen > w.PhrasePenaltyCap {
		phrasePen = w.PhrasePenaltyCap
	}
	score -= phrasePen

	termViolations := 0
	for _, count := range r.TerminologyCounts {
		if count > cfg.MaxTermRepeat {
			termViolations++
		}
	}
	termPen := float64(termViolations) * w.TermPenalty
	if termPen > w.TermPenaltyCap {
		termPen = w.TermPenaltyCap
	}
	score -= termPen

	if r.HostBalanceRatio != nil {
		ratio := *r.HostBalanceRatio
		deviation := 0.0
		if ratio < cfg.MinHostShare {
			deviation = cfg.MinHostShare - ratio
		} else if ratio > cfg.MaxHostShare {
			deviation = ratio - cfg.MaxHostShare
		}
		score -= deviation * w.BalancePenalty
	}

	score -= float64(r.ConsecutiveSpeakerViolations) * w.ConsecutivePenalty

	minutesOutside := 0.0
	if r.EstimatedRuntimeMinutes < cfg.MinRuntimeMinutes {
		minutesOutside = cfg.MinRuntimeMinutes - r.EstimatedRuntimeMinutes
	} else if r.EstimatedRuntimeMinutes > cfg.MaxRuntimeMinutes {
		minutesOutside = r.EstimatedRuntimeMinutes - cfg.MaxRuntimeMinutes
	}
	score -= minutesOutside * w.RuntimePenalty

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	r.OverallScore = score
	r.Pass = score >= w.PassThreshold && !r.BalanceUnevaluable && len(r.FactualFlags) == 0
}
