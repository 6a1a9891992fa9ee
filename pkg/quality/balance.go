package quality

import "github.com/csaunders4z/market-voice-sub001/internal/model"

// hostWordCounts sums the spoken words attributed to each host. Word counts
// are the speaking-time proxy; no audio exists in this pipeline.
func hostWordCounts(doc *model.ScriptDocument) (hostA, hostB int) {
	for _, seg := range doc.Segments {
		n := len(tokenize(seg.Text))
		if seg.Speaker == model.HostA {
			hostA += n
		} else {
			hostB += n
		}
	}
	return hostA, hostB
}

// balanceRatio returns HostA's share of total spoken words, or nil when the
// script contains no words at all so the metric is unevaluable.
func balanceRatio(hostA, hostB int) *float64 {
	total := hostA + hostB
	if total == 0 {
		return nil
	}
	ratio := float64(hostA) / float64(total)
	return &ratio
}

// consecutiveViolations walks only the stock segments in order and counts
// maximal same-speaker runs longer than maxRun. A run of any offending length
// counts as one violation, not one per excess segment.
func consecutiveViolations(doc *model.ScriptDocument, maxRun int) int {
	violations := 0
	runLen := 0
	var runSpeaker model.Speaker

	flush := func() {
		if runLen > maxRun {
			violations++
		}
		runLen = 0
	}

	for _, seg := range doc.Segments {
		if seg.Kind != model.KindWinner && seg.Kind != model.KindLoser {
			continue
		}
		if runLen > 0 && seg.Speaker != runSpeaker {
			flush()
		}
		runSpeaker = seg.Speaker
		runLen++
	}
	flush()

	return violations
}

// estimatedRuntime converts a word total into minutes at the configured
// speaking pace.
func estimatedRuntime(totalWords int, wordsPerMinute float64) float64 {
	return float64(totalWords) / wordsPerMinute
}
