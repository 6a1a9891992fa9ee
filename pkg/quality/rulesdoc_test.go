package quality

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const sampleRulesDoc = `# Market Voices script requirements

The show runs with two hosts and a strict quality bar.

## Numeric rules

- max_phrase_repeat: 3
- max term repeat: 4
- min_host_share: 0.40
- max_host_share: 0.60
- words_per_minute: 160

Keep the tone professional and the pace steady.
`

func TestApplyRulesDoc_Overrides(t *testing.T) {
	cfg := DefaultRules()

	applied, err := applyRulesDoc(&cfg, []byte(sampleRulesDoc))

	assert.Equal(t, nil, err)
	assert.Equal(t, 5, applied)
	assert.Equal(t, 3, cfg.MaxPhraseRepeat)
	assert.Equal(t, 4, cfg.MaxTermRepeat)
	assert.Equal(t, 0.40, cfg.MinHostShare)
	assert.Equal(t, 0.60, cfg.MaxHostShare)
	assert.Equal(t, 160.0, cfg.WordsPerMinute)
	// Untouched fields keep their defaults.
	assert.Equal(t, 10.0, cfg.MinRuntimeMinutes)
}

func TestApplyRulesDoc_ProseIgnored(t *testing.T) {
	cfg := DefaultRules()

	applied, err := applyRulesDoc(&cfg, []byte("Just prose, no rules here.\n\n- a bullet without numbers\n"))

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, applied)
	assert.Equal(t, DefaultRules().MaxPhraseRepeat, cfg.MaxPhraseRepeat)
}

func TestLoadRulesDoc_MissingFileFallsBack(t *testing.T) {
	cfg := LoadRulesDoc(filepath.Join(t.TempDir(), "absent.md"), time.Monday)

	assert.Equal(t, DefaultRules(), cfg)
}

func TestLoadRulesDoc_EmptyPathUsesDefaults(t *testing.T) {
	cfg := LoadRulesDoc("", time.Friday)

	assert.Equal(t, 10.0, cfg.TargetRuntimeMinutes)
}

func TestLoadRulesDoc_InconsistentOverridesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	doc := "- min_host_share: 0.9\n- max_host_share: 0.2\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write rules doc: %v", err)
	}

	cfg := LoadRulesDoc(path, time.Monday)

	assert.Equal(t, DefaultRules(), cfg)
}

func TestLoadRulesDoc_AppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	if err := os.WriteFile(path, []byte(sampleRulesDoc), 0o644); err != nil {
		t.Fatalf("write rules doc: %v", err)
	}

	cfg := LoadRulesDoc(path, time.Wednesday)

	assert.Equal(t, 3, cfg.MaxPhraseRepeat)
	assert.Equal(t, 15.0, cfg.TargetRuntimeMinutes)
}

func TestDefaultRulesFor_FridayShortShow(t *testing.T) {
	assert.Equal(t, 10.0, DefaultRulesFor(time.Friday).TargetRuntimeMinutes)
	assert.Equal(t, 15.0, DefaultRulesFor(time.Tuesday).TargetRuntimeMinutes)
}
