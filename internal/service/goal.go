package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/sillygoals/sillygoals/internal/model"
	"github.com/sillygoals/sillygoals/internal/repository"
	"github.com/sillygoals/sillygoals/internal/stage"
)

var (
	ErrInvalidStage = errors.New("stage must be between 0 and 4")
)

// GoalService guards every mutation by resolving the owning group through a
// user-scoped query first. Goal ownership is transitively the group owner's;
// the goal itself is only ever matched by (id, group_id).
type GoalService struct {
	goals  repository.GoalRepository
	groups repository.GroupRepository
}

func NewGoalService(goals repository.GoalRepository, groups repository.GroupRepository) *GoalService {
	return &GoalService{
		goals:  goals,
		groups: groups,
	}
}

// ForGroup lists a group's goals. Callers must have authorized the group.
func (s *GoalService) ForGroup(groupID int64) ([]*model.Goal, error) {
	return s.goals.ForGroup(groupID)
}

// ByID fetches one goal scoped by its group. Callers must have authorized
// the group.
func (s *GoalService) ByID(groupID, goalID int64) (*model.Goal, error) {
	return s.goals.ByID(groupID, goalID)
}

func (s *GoalService) Create(userID string, groupID int64, title, description string, st int, deadline *time.Time) (*model.Goal, error) {
	if !stage.Valid(st) {
		return nil, ErrInvalidStage
	}

	group, err := s.groups.ByID(userID, groupID)
	if err != nil {
		return nil, err
	}

	goal := &model.Goal{
		Title:       title,
		Description: description,
		Stage:       st,
		Deadline:    deadline,
		GroupID:     group.ID,
	}

	err = s.goals.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Update(userID string, groupID, goalID int64, title, description string, st int, deadline *time.Time) error {
	if !stage.Valid(st) {
		return ErrInvalidStage
	}

	group, err := s.groups.ByID(userID, groupID)
	if err != nil {
		return err
	}

	return s.goals.Update(&model.Goal{
		ID:          goalID,
		Title:       title,
		Description: description,
		Stage:       st,
		Deadline:    deadline,
		GroupID:     group.ID,
	})
}

// UpdateStage moves a goal to any valid stage. Only group ownership is
// checked; the goal is matched by (id, group_id) in the update clause.
func (s *GoalService) UpdateStage(userID string, groupID, goalID int64, st int) error {
	_, err := s.groups.ByID(userID, groupID)
	if err != nil {
		return err
	}

	if !stage.Valid(st) {
		return ErrInvalidStage
	}

	return s.goals.UpdateStage(groupID, goalID, st)
}

func (s *GoalService) Delete(userID string, groupID, goalID int64) error {
	_, err := s.groups.ByID(userID, groupID)
	if err != nil {
		return err
	}

	return s.goals.Delete(groupID, goalID)
}
