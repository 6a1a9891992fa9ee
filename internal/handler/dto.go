package handler

import "github.com/csaunders4z/market-voice-sub001/internal/model"

type ScriptResponse struct {
	ID            int64  `json:"id"`
	AirDate       string `json:"air_date"`
	LeadHost      string `json:"lead_host"`
	CoHost        string `json:"co_host"`
	TargetMinutes int    `json:"target_minutes"`
	ModelUsed     string `json:"model_used"`
	PromptVersion string `json:"prompt_version"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type ScriptsResponse struct {
	Scripts []ScriptResponse `json:"scripts"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// ReportResponse wraps the quality report with its storage identity. The
// report body keeps the validator's own JSON field names.
type ReportResponse struct {
	ID        int64               `json:"id"`
	ScriptID  int64               `json:"script_id"`
	CreatedAt string              `json:"created_at"`
	Report    model.QualityReport `json:"report"`
}

type SingleScriptResponse struct {
	ScriptResponse
	Script string          `json:"script"`
	Report *ReportResponse `json:"report"`
}
