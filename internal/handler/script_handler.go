package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/csaunders4z/market-voice-sub001/internal/model"

	"github.com/gin-gonic/gin"
)

type ScriptStore interface {
	GetScripts(limit, offset int) ([]model.BroadcastScript, error)
	GetScriptTotal() (int, error)
	GetByID(id int64) (*model.BroadcastScript, error)
	GetLatestValidated() (*model.BroadcastScript, error)
}

type ReportStore interface {
	GetByScriptID(scriptID int64) (*model.ScriptReport, error)
}

type ScriptHandler struct {
	scripts ScriptStore
	reports ReportStore
}

func NewScriptHandler(scripts ScriptStore, reports ReportStore) *ScriptHandler {
	return &ScriptHandler{scripts: scripts, reports: reports}
}

func toScriptResponse(s model.BroadcastScript) ScriptResponse {
	return ScriptResponse{
		ID:            s.ID,
		AirDate:       s.AirDate.Format("2006-01-02"),
		LeadHost:      s.LeadHost,
		CoHost:        s.CoHost,
		TargetMinutes: s.TargetMinutes,
		ModelUsed:     s.ModelUsed,
		PromptVersion: s.PromptVersion,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}

func toReportResponse(r *model.ScriptReport) *ReportResponse {
	if r == nil {
		return nil
	}
	return &ReportResponse{
		ID:        r.ID,
		ScriptID:  r.ScriptID,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		Report:    r.Report,
	}
}

func (h *ScriptHandler) GetScripts(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	scripts, err := h.scripts.GetScripts(limit, offset)
	if err != nil {
		slog.Error("error fetching scripts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.scripts.GetScriptTotal()
	if err != nil {
		slog.Error("error fetching script total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := ScriptsResponse{
		Scripts: []ScriptResponse{},
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	for _, s := range scripts {
		res.Scripts = append(res.Scripts, toScriptResponse(s))
	}

	c.JSON(http.StatusOK, res)
}

func (h *ScriptHandler) GetScript(c *gin.Context) {
	id := c.Param("id")

	scriptID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid script id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid script id"})
		return
	}

	script, err := h.scripts.GetByID(scriptID)
	if err != nil {
		slog.Error("error fetching script", "error", err, "script_id", scriptID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if script == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Script not found"})
		return
	}

	report, err := h.reports.GetByScriptID(scriptID)
	if err != nil {
		slog.Error("error fetching report", "error", err, "script_id", scriptID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, SingleScriptResponse{
		ScriptResponse: toScriptResponse(*script),
		Script:         script.RawText,
		Report:         toReportResponse(report),
	})
}

// GetLatestScript returns the newest script that passed the quality gate,
// the one a downstream production step should pick up.
func (h *ScriptHandler) GetLatestScript(c *gin.Context) {
	script, err := h.scripts.GetLatestValidated()
	if err != nil {
		slog.Error("error fetching latest script", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if script == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No validated script available"})
		return
	}

	report, err := h.reports.GetByScriptID(script.ID)
	if err != nil {
		slog.Error("error fetching report", "error", err, "script_id", script.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, SingleScriptResponse{
		ScriptResponse: toScriptResponse(*script),
		Script:         script.RawText,
		Report:         toReportResponse(report),
	})
}

func (h *ScriptHandler) GetHealth(c *gin.Context) {
	_, err := h.scripts.GetScriptTotal()
	if err != nil {
		slog.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
