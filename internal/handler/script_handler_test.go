package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/csaunders4z/market-voice-sub001/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeScriptStore struct {
	scripts []model.BroadcastScript
	total   int
	script  *model.BroadcastScript
	latest  *model.BroadcastScript
	err     error
}

func (f *fakeScriptStore) GetScripts(limit, offset int) ([]model.BroadcastScript, error) {
	return f.scripts, f.err
}

func (f *fakeScriptStore) GetScriptTotal() (int, error) {
	return f.total, f.err
}

func (f *fakeScriptStore) GetByID(id int64) (*model.BroadcastScript, error) {
	return f.script, f.err
}

func (f *fakeScriptStore) GetLatestValidated() (*model.BroadcastScript, error) {
	return f.latest, f.err
}

type fakeReportStore struct {
	report *model.ScriptReport
	err    error
}

func (f *fakeReportStore) GetByScriptID(scriptID int64) (*model.ScriptReport, error) {
	return f.report, f.err
}

func newTestRouter(scripts ScriptStore, reports ReportStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewScriptHandler(scripts, reports)
	r.GET("/scripts", h.GetScripts)
	r.GET("/scripts/latest", h.GetLatestScript)
	r.GET("/scripts/:id", h.GetScript)
	r.GET("/health", h.GetHealth)
	return r
}

func sampleScript() model.BroadcastScript {
	return model.BroadcastScript{
		ID:            1,
		AirDate:       time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		RawText:       "Suzanne: Welcome.\n[WINNERS]\nMarcus: Nvidia rose.\nSuzanne: Goodbye.",
		LeadHost:      "Suzanne",
		CoHost:        "Marcus",
		TargetMinutes: 10,
		ModelUsed:     "gpt-4.1-mini",
		PromptVersion: "v2",
		Status:        model.StatusValidated,
		CreatedAt:     time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC),
	}
}

func TestGetScripts_ReturnsList(t *testing.T) {
	store := &fakeScriptStore{
		scripts: []model.BroadcastScript{sampleScript()},
		total:   1,
	}
	r := newTestRouter(store, &fakeReportStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/scripts?limit=10&offset=0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ScriptsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, len(res.Scripts))
	assert.Equal(t, "2026-08-28", res.Scripts[0].AirDate)
	assert.Equal(t, "validated", res.Scripts[0].Status)
}

func TestGetScripts_DefaultLimit(t *testing.T) {
	store := &fakeScriptStore{scripts: []model.BroadcastScript{}}
	r := newTestRouter(store, &fakeReportStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/scripts", nil)
	r.ServeHTTP(w, req)

	var res ScriptsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, 0, res.Offset)
}

func TestGetScripts_DBError(t *testing.T) {
	store := &fakeScriptStore{err: errors.New("DB down")}
	r := newTestRouter(store, &fakeReportStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/scripts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetScript_FoundWithReport(t *testing.T) {
	script := sampleScript()
	ratio := 0.5
	store := &fakeScriptStore{script: &script}
	reports := &fakeReportStore{report: &model.ScriptReport{
		ID:       7,
		ScriptID: 1,
		Report: model.QualityReport{
			HostBalanceRatio:  &ratio,
			RepeatedPhrases:   map[string]int{},
			TerminologyCounts: map[string]int{"market cap": 2},
			OverallScore:      92,
			Pass:              true,
		},
		CreatedAt: time.Date(2026, 8, 28, 14, 5, 0, 0, time.UTC),
	}}

	r := newTestRouter(store, reports)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/scripts/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SingleScriptResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, script.RawText, res.Script)
	assert.NotEqual(t, nil, res.Report)
	assert.Equal(t, 92.0, res.Report.Report.OverallScore)
	assert.Equal(t, true, res.Report.Report.Pass)
	assert.Equal(t, 0.5, *res.Report.Report.HostBalanceRatio)
}

func TestGetScript_FoundWithoutReport(t *testing.T) {
	script := sampleScript()
	script.Status = model.StatusPending
	store := &fakeScriptStore{script: &script}

	r := newTestRouter(store, &fakeReportStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/scripts/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SingleScriptResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, (*ReportResponse)(nil), res.Report)
}

func TestGetScript_NotFound(t *testing.T) {
	r := newTestRouter(&fakeScriptStore{}, &fakeReportStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/scripts/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetScript_InvalidID(t *testing.T) {
	r := newTestRouter(&fakeScriptStore{}, &fakeReportStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/scripts/aaa", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLatestScript_Found(t *testing.T) {
	script := sampleScript()
	store := &fakeScriptStore{latest: &script}
	r := newTestRouter(store, &fakeReportStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/scripts/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SingleScriptResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, int64(1), res.ID)
}

func TestGetLatestScript_NoneValidated(t *testing.T) {
	r := newTestRouter(&fakeScriptStore{}, &fakeReportStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/scripts/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetHealth_Healthy(t *testing.T) {
	r := newTestRouter(&fakeScriptStore{}, &fakeReportStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
}

func TestGetHealth_Unhealthy(t *testing.T) {
	r := newTestRouter(&fakeScriptStore{err: errors.New("DB down")}, &fakeReportStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "unhealthy", res["status"])
}
