package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sillygoals/sillygoals/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// GoalRepository scopes every operation by group id. Ownership of the group
// itself is the caller's responsibility (resolve it through GroupRepository
// first); goal ownership is transitively the group owner's.
type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(groupID, goalID int64) (*model.Goal, error)
	ForGroup(groupID int64) ([]*model.Goal, error)
	Update(goal *model.Goal) error
	UpdateStage(groupID, goalID int64, stage int) error
	Delete(groupID, goalID int64) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (title, description, stage, deadline, group_id)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	return r.db.Get(&goal.ID, query,
		goal.Title,
		goal.Description,
		goal.Stage,
		goal.Deadline,
		goal.GroupID,
	)
}

func (r *goalRepository) ByID(groupID, goalID int64) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1 AND group_id = $2`

	err := r.db.Get(goal, query, goalID, groupID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) ForGroup(groupID int64) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE group_id = $1 ORDER BY id`

	err := r.db.Select(&goals, query, groupID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET title = $1, description = $2, stage = $3, deadline = $4
	          WHERE id = $5 AND group_id = $6`

	result, err := r.db.Exec(query,
		goal.Title,
		goal.Description,
		goal.Stage,
		goal.Deadline,
		goal.ID,
		goal.GroupID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) UpdateStage(groupID, goalID int64, stage int) error {
	query := `UPDATE goals SET stage = $1 WHERE id = $2 AND group_id = $3`

	result, err := r.db.Exec(query, stage, goalID, groupID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) Delete(groupID, goalID int64) error {
	query := `DELETE FROM goals WHERE id = $1 AND group_id = $2`

	result, err := r.db.Exec(query, goalID, groupID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}
