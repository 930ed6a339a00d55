package service

import (
	"fmt"

	"github.com/sillygoals/sillygoals/internal/model"
	"github.com/sillygoals/sillygoals/internal/repository"
)

// GroupService is the ownership guard for groups: every method resolves or
// mutates through a query filtered by the acting user's id.
type GroupService struct {
	groups repository.GroupRepository
	tones  repository.ToneRepository
}

func NewGroupService(groups repository.GroupRepository, tones repository.ToneRepository) *GroupService {
	return &GroupService{
		groups: groups,
		tones:  tones,
	}
}

func (s *GroupService) Groups(userID string) ([]*model.Group, error) {
	return s.groups.Groups(userID)
}

func (s *GroupService) Links(userID string) ([]*model.GroupLink, error) {
	return s.groups.Links(userID)
}

func (s *GroupService) ByID(userID string, groupID int64) (*model.Group, error) {
	return s.groups.ByID(userID, groupID)
}

func (s *GroupService) WithTone(userID string, groupID int64) (*model.GroupDisplay, error) {
	return s.groups.WithTone(userID, groupID)
}

func (s *GroupService) EligibleTones(userID string) ([]*model.Tone, error) {
	return s.tones.Eligible(userID)
}

func (s *GroupService) Create(userID, title, description string, toneID int64) (*model.Group, error) {
	group := &model.Group{
		Title:       title,
		Description: description,
		ToneID:      toneID,
		UserID:      userID,
	}

	err := s.groups.Create(group)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

func (s *GroupService) Update(userID string, groupID int64, title, description string, toneID int64) error {
	return s.groups.Update(&model.Group{
		ID:          groupID,
		Title:       title,
		Description: description,
		ToneID:      toneID,
		UserID:      userID,
	})
}

// Delete removes the group and, through the repository boundary, every goal
// in it.
func (s *GroupService) Delete(userID string, groupID int64) error {
	return s.groups.Delete(userID, groupID)
}
