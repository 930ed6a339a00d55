package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sillygoals/sillygoals/internal/model"
)

var (
	ErrToneNotFound = errors.New("tone not found")
)

type ToneRepository interface {
	Eligible(userID string) ([]*model.Tone, error)
	ByID(userID string, toneID int64) (*model.Tone, error)
}

type toneRepository struct {
	db *sqlx.DB
}

func NewToneRepository(db *sqlx.DB) ToneRepository {
	return &toneRepository{db: db}
}

// Eligible returns the tones a user may attach to a group: every global tone
// plus the user's own.
func (r *toneRepository) Eligible(userID string) ([]*model.Tone, error) {
	var tones []*model.Tone
	query := `SELECT * FROM tones WHERE global = 1 OR user_id = $1 ORDER BY id`

	err := r.db.Select(&tones, query, userID)
	if err != nil {
		return nil, err
	}

	return tones, nil
}

func (r *toneRepository) ByID(userID string, toneID int64) (*model.Tone, error) {
	tone := &model.Tone{}
	query := `SELECT * FROM tones WHERE id = $1 AND (global = 1 OR user_id = $2)`

	err := r.db.Get(tone, query, toneID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrToneNotFound
	}

	return tone, err
}
