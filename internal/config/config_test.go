package config

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	assert.Equal(t, "Market Voices", cfg.Show.Name)
	assert.Equal(t, "Suzanne", cfg.Show.LeadHost)
	assert.Equal(t, "Marcus", cfg.Show.CoHost)
	assert.Equal(t, 5, cfg.Market.TopCount)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestHostsFor_FixedLead(t *testing.T) {
	show := ShowConfig{LeadHost: "Suzanne", CoHost: "Marcus"}

	lead, co := show.HostsFor(time.Tuesday)

	assert.Equal(t, "Suzanne", lead)
	assert.Equal(t, "Marcus", co)
}

func TestHostsFor_AlternatingLead(t *testing.T) {
	show := ShowConfig{LeadHost: "Suzanne", CoHost: "Marcus", AlternateLead: true}

	lead, co := show.HostsFor(time.Tuesday)
	assert.Equal(t, "Marcus", lead)
	assert.Equal(t, "Suzanne", co)

	lead, co = show.HostsFor(time.Friday)
	assert.Equal(t, "Suzanne", lead)
	assert.Equal(t, "Marcus", co)
}
