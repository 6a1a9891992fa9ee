package repository

import (
	"database/sql"
	"time"

	"github.com/csaunders4z/market-voice-sub001/internal/model"
)

type ScriptRepository struct {
	db *sql.DB
}

func NewScriptRepository(db *sql.DB) *ScriptRepository {
	return &ScriptRepository{db: db}
}

func (r *ScriptRepository) SaveScript(script *model.BroadcastScript) error {
	return r.db.QueryRow(`
		INSERT INTO broadcast_script(air_date, raw_text, lead_host, co_host, target_minutes, prompt_version, model_used, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, script.AirDate, script.RawText, script.LeadHost, script.CoHost, script.TargetMinutes,
		script.PromptVersion, script.ModelUsed, model.StatusPending).Scan(&script.ID)
}

func (r *ScriptRepository) GetByID(id int64) (*model.BroadcastScript, error) {
	var s model.BroadcastScript
	err := r.db.QueryRow(`
		SELECT id, air_date, raw_text, lead_host, co_host, target_minutes, prompt_version, model_used, status, created_at
		FROM broadcast_script
		WHERE id = $1
	`, id).Scan(&s.ID, &s.AirDate, &s.RawText, &s.LeadHost, &s.CoHost, &s.TargetMinutes,
		&s.PromptVersion, &s.ModelUsed, &s.Status, &s.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *ScriptRepository) GetForDate(day time.Time) (*model.BroadcastScript, error) {
	var s model.BroadcastScript
	err := r.db.QueryRow(`
		SELECT id, air_date, raw_text, lead_host, co_host, target_minutes, prompt_version, model_used, status, created_at
		FROM broadcast_script
		WHERE air_date = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, day).Scan(&s.ID, &s.AirDate, &s.RawText, &s.LeadHost, &s.CoHost, &s.TargetMinutes,
		&s.PromptVersion, &s.ModelUsed, &s.Status, &s.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *ScriptRepository) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec(`
		UPDATE broadcast_script SET status = $1 WHERE id = $2
	`, status, id)
	return err
}

// GetLatestValidated returns the newest script that passed the quality gate.
func (r *ScriptRepository) GetLatestValidated() (*model.BroadcastScript, error) {
	var s model.BroadcastScript
	err := r.db.QueryRow(`
		SELECT id, air_date, raw_text, lead_host, co_host, target_minutes, prompt_version, model_used, status, created_at
		FROM broadcast_script
		WHERE status = $1
		ORDER BY air_date DESC, created_at DESC
		LIMIT 1
	`, model.StatusValidated).Scan(&s.ID, &s.AirDate, &s.RawText, &s.LeadHost, &s.CoHost,
		&s.TargetMinutes, &s.PromptVersion, &s.ModelUsed, &s.Status, &s.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *ScriptRepository) GetScripts(limit, offset int) ([]model.BroadcastScript, error) {
	rows, err := r.db.Query(`
		SELECT id, air_date, raw_text, lead_host, co_host, target_minutes, prompt_version, model_used, status, created_at
		FROM broadcast_script
		ORDER BY air_date DESC, created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scripts []model.BroadcastScript
	for rows.Next() {
		var s model.BroadcastScript
		err := rows.Scan(&s.ID, &s.AirDate, &s.RawText, &s.LeadHost, &s.CoHost, &s.TargetMinutes,
			&s.PromptVersion, &s.ModelUsed, &s.Status, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scripts, nil
}

func (r *ScriptRepository) GetScriptTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM broadcast_script`).Scan(&total)
	return total, err
}

func (r *ScriptRepository) SaveError(scriptID int64, errMsg string, errType string) error {
	_, err := r.db.Exec(`
		INSERT INTO processing_error(script_id, error_message, error_type)
		VALUES($1, $2, $3)
	`, scriptID, errMsg, errType)

	return err
}

func (r *ScriptRepository) GetErrorCount(scriptID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM processing_error
		WHERE script_id = $1
	`, scriptID).Scan(&count)

	return count, err
}
