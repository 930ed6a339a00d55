package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DeadlineType controls how a tone treats goal deadlines.
type DeadlineType string

const (
	DeadlineNone DeadlineType = "none"
	DeadlineSoft DeadlineType = "soft"
	DeadlineHard DeadlineType = "hard"
)

// GoalBehavior is a tone's policy for goals past their deadline.
type GoalBehavior string

const (
	BehaviorHide    GoalBehavior = "hide"
	BehaviorNag     GoalBehavior = "nag"
	BehaviorForgive GoalBehavior = "forgive"
)

// StageLabels is the tone's four board column names, stored as a JSON array.
type StageLabels []string

func (s *StageLabels) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StageLabels", src)
	}
}

func (s StageLabels) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Tone is a labeling/behavior template for a group. Global tones are visible
// to every user; private tones belong to one user.
type Tone struct {
	ID            int64        `db:"id"`
	Name          string       `db:"name"`
	Stages        StageLabels  `db:"stages"`
	Deadline      DeadlineType `db:"deadline"`
	Global        bool         `db:"global"`
	Greeting      string       `db:"greeting"`
	UnmetBehavior GoalBehavior `db:"unmet_behavior"`
	UserID        *string      `db:"user_id"` // nil for global tones
}
