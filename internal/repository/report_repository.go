package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/csaunders4z/market-voice-sub001/internal/model"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) SaveReport(report *model.ScriptReport) error {
	repeated, err := json.Marshal(report.Report.RepeatedPhrases)
	if err != nil {
		return err
	}
	terms, err := json.Marshal(report.Report.TerminologyCounts)
	if err != nil {
		return err
	}
	flags, err := json.Marshal(report.Report.FactualFlags)
	if err != nil {
		return err
	}

	var ratio sql.NullFloat64
	if report.Report.HostBalanceRatio != nil {
		ratio = sql.NullFloat64{Float64: *report.Report.HostBalanceRatio, Valid: true}
	}

	return r.db.QueryRow(`
		INSERT INTO quality_report(script_id, host_balance_ratio, balance_unevaluable, repeated_phrases,
			terminology_counts, consecutive_speaker_violations, estimated_runtime_minutes, factual_flags,
			overall_score, pass)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, report.ScriptID, ratio, report.Report.BalanceUnevaluable, repeated, terms,
		report.Report.ConsecutiveSpeakerViolations, report.Report.EstimatedRuntimeMinutes, flags,
		report.Report.OverallScore, report.Report.Pass).Scan(&report.ID)
}

// GetByScriptID returns the newest report for a script, or nil when the
// script has not been validated yet.
func (r *ReportRepository) GetByScriptID(scriptID int64) (*model.ScriptReport, error) {
	row := r.db.QueryRow(`
		SELECT id, script_id, host_balance_ratio, balance_unevaluable, repeated_phrases,
			terminology_counts, consecutive_speaker_violations, estimated_runtime_minutes, factual_flags,
			overall_score, pass, created_at
		FROM quality_report
		WHERE script_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, scriptID)

	report, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *ReportRepository) GetLatestReport() (*model.ScriptReport, error) {
	row := r.db.QueryRow(`
		SELECT id, script_id, host_balance_ratio, balance_unevaluable, repeated_phrases,
			terminology_counts, consecutive_speaker_violations, estimated_runtime_minutes, factual_flags,
			overall_score, pass, created_at
		FROM quality_report
		ORDER BY created_at DESC
		LIMIT 1
	`)

	report, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func scanReport(row *sql.Row) (*model.ScriptReport, error) {
	var rep model.ScriptReport
	var ratio sql.NullFloat64
	var repeated, terms, flags []byte

	err := row.Scan(&rep.ID, &rep.ScriptID, &ratio, &rep.Report.BalanceUnevaluable, &repeated,
		&terms, &rep.Report.ConsecutiveSpeakerViolations, &rep.Report.EstimatedRuntimeMinutes, &flags,
		&rep.Report.OverallScore, &rep.Report.Pass, &rep.CreatedAt)
	if err != nil {
		return nil, err
	}

	if ratio.Valid {
		rep.Report.HostBalanceRatio = &ratio.Float64
	}
	if err := json.Unmarshal(repeated, &rep.Report.RepeatedPhrases); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(terms, &rep.Report.TerminologyCounts); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(flags, &rep.Report.FactualFlags); err != nil {
		return nil, err
	}

	return &rep, nil
}
