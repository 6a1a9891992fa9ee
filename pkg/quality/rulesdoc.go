package quality

import (
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var rulePattern = regexp.MustCompile(`(?i)^([a-z][a-z0-9 _-]*?)\s*[:=]\s*([0-9]+(?:\.[0-9]+)?)\s*$`)

// LoadRulesDoc reads numeric rule overrides from the human-editable markdown
// requirements document and applies them on top of the weekday defaults.
//
// The override file is optional tooling for show producers, so it can never
// take down the pipeline: a missing, unreadable, malformed or internally
// inconsistent document degrades to the defaults with a logged warning.
func LoadRulesDoc(path string, day time.Weekday) RuleConfig {
	cfg := DefaultRulesFor(day)
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("rules document unreadable, using defaults", "path", path, "error", err)
		return cfg
	}

	applied, err := applyRulesDoc(&cfg, data)
	if err != nil {
		slog.Warn("rules document unparseable, using defaults", "path", path, "error", err)
		return DefaultRulesFor(day)
	}

	if err := cfg.Validate(); err != nil {
		slog.Warn("rules document overrides inconsistent, using defaults", "path", path, "error", err)
		return DefaultRulesFor(day)
	}

	if applied > 0 {
		slog.Info("rule overrides applied", "path", path, "count", applied)
	}
	return cfg
}

// applyRulesDoc walks the markdown AST and applies every recognized
// "key: value" pair found in list items and paragraphs. Unknown keys are
// ignored so producers can keep prose in the same document.
func applyRulesDoc(cfg *RuleConfig, src []byte) (int, error) {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	applied := 0
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		textNode, ok := n.(*ast.Text)
		if !ok {
			return ast.WalkContinue, nil
		}

		line := strings.TrimSpace(string(textNode.Segment.Value(src)))
		m := rulePattern.FindStringSubmatch(line)
		if m == nil {
			return ast.WalkContinue, nil
		}
		if applyRule(cfg, normalizeKey(m[1]), m[2]) {
			applied++
		}
		return ast.WalkContinue, nil
	})
	return applied, err
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

func applyRule(cfg *RuleConfig, key, raw string) bool {
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return false
	}

	switch key {
	case "max_phrase_repeat":
		cfg.MaxPhraseRepeat = int(val)
	case "max_term_repeat":
		cfg.MaxTermRepeat = int(val)
	case "min_host_share":
		cfg.MinHostShare = val
	case "max_host_share":
		cfg.MaxHostShare = val
	case "max_consecutive_stocks_per_host":
		cfg.MaxConsecutiveStocksPerHost = int(val)
	case "target_runtime_minutes":
		cfg.TargetRuntimeMinutes = val
	case "min_runtime_minutes":
		cfg.MinRuntimeMinutes = val
	case "max_runtime_minutes":
		cfg.MaxRuntimeMinutes = val
	case "words_per_minute":
		cfg.WordsPerMinute = val
	default:
		return false
	}
	return true
}
