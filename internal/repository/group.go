package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sillygoals/sillygoals/internal/model"
)

var (
	ErrGroupNotFound = errors.New("group not found")
)

// GroupRepository scopes every operation by the owning user's id. A lookup
// that matches no row returns ErrGroupNotFound whether the group is absent or
// owned by someone else; callers cannot tell the two apart.
type GroupRepository interface {
	Create(group *model.Group) error
	ByID(userID string, groupID int64) (*model.Group, error)
	Groups(userID string) ([]*model.Group, error)
	Links(userID string) ([]*model.GroupLink, error)
	WithTone(userID string, groupID int64) (*model.GroupDisplay, error)
	Update(group *model.Group) error
	Delete(userID string, groupID int64) error
}

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(group *model.Group) error {
	query := `INSERT INTO groups (title, description, tone_id, user_id)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	return r.db.Get(&group.ID, query,
		group.Title,
		group.Description,
		group.ToneID,
		group.UserID,
	)
}

func (r *groupRepository) ByID(userID string, groupID int64) (*model.Group, error) {
	group := &model.Group{}
	query := `SELECT * FROM groups WHERE id = $1 AND user_id = $2`

	err := r.db.Get(group, query, groupID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrGroupNotFound
	}

	return group, err
}

func (r *groupRepository) Groups(userID string) ([]*model.Group, error) {
	var groups []*model.Group
	query := `SELECT * FROM groups WHERE user_id = $1 ORDER BY id`

	err := r.db.Select(&groups, query, userID)
	if err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *groupRepository) Links(userID string) ([]*model.GroupLink, error) {
	var links []*model.GroupLink
	query := `SELECT id, title FROM groups WHERE user_id = $1 ORDER BY id`

	err := r.db.Select(&links, query, userID)
	if err != nil {
		return nil, err
	}

	return links, nil
}

func (r *groupRepository) WithTone(userID string, groupID int64) (*model.GroupDisplay, error) {
	display := &model.GroupDisplay{}
	query := `SELECT g.id, g.title, g.description,
	                 t.stages, t.greeting, t.deadline, t.unmet_behavior
	          FROM groups g
	          JOIN tones t ON t.id = g.tone_id
	          WHERE g.id = $1 AND g.user_id = $2`

	err := r.db.Get(display, query, groupID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrGroupNotFound
	}

	return display, err
}

func (r *groupRepository) Update(group *model.Group) error {
	query := `UPDATE groups
	          SET title = $1, description = $2, tone_id = $3
	          WHERE id = $4 AND user_id = $5`

	result, err := r.db.Exec(query,
		group.Title,
		group.Description,
		group.ToneID,
		group.ID,
		group.UserID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// Delete removes the group; the goals FK cascades, so every goal in the
// group goes with it.
func (r *groupRepository) Delete(userID string, groupID int64) error {
	query := `DELETE FROM groups WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, groupID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGroupNotFound
	}

	return nil
}
