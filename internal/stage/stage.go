// Package stage defines the goal lifecycle positions. Stages 0-3 are the
// four displayable board columns; stage 4 is a terminal overflow slot that is
// never shown on the board. Any stage is reachable directly from any other
// valid stage.
package stage

import (
	"log/slog"

	"github.com/sillygoals/sillygoals/internal/model"
)

const (
	// Count is the number of displayable board columns.
	Count = 4
	// Overflow is the terminal slot excluded from board partitioning.
	Overflow = 4
	// Max is the highest stage a goal may be moved to.
	Max = Overflow
)

// Valid reports whether s may be persisted as a goal stage.
func Valid(s int) bool {
	return s >= 0 && s <= Max
}

// Displayable reports whether s maps to a board column.
func Displayable(s int) bool {
	return s >= 0 && s < Count
}

// Partition splits goals into one ordered bucket per board column. Relative
// order within a bucket follows the input order. Goals whose stage is outside
// the displayable range (including the overflow slot) are dropped from the
// board; a stage that fails Valid is a data-integrity anomaly and is logged.
func Partition(goals []*model.Goal) [Count][]*model.Goal {
	var buckets [Count][]*model.Goal
	for _, goal := range goals {
		if !Displayable(goal.Stage) {
			if !Valid(goal.Stage) {
				slog.Warn("goal has invalid stage, skipping",
					"goal_id", goal.ID, "group_id", goal.GroupID, "stage", goal.Stage)
			}
			continue
		}
		buckets[goal.Stage] = append(buckets[goal.Stage], goal)
	}
	return buckets
}

// Label returns the tone's column name for stage s, or "unknown" when s has
// no label.
func Label(stages model.StageLabels, s int) string {
	if s >= 0 && s < len(stages) {
		return stages[s]
	}
	return "unknown"
}

// Color returns the Tailwind background token for a stage. Out-of-range
// stages fall back to gray.
func Color(s int) string {
	switch s {
	case 0:
		return "bg-rose-500"
	case 1:
		return "bg-amber-500"
	case 2:
		return "bg-sky-500"
	case 3:
		return "bg-emerald-500"
	default:
		return "bg-gray-500"
	}
}

// ColorLight is the muted background token used for column bodies.
func ColorLight(s int) string {
	switch s {
	case 0:
		return "bg-rose-200"
	case 1:
		return "bg-amber-200"
	case 2:
		return "bg-sky-200"
	case 3:
		return "bg-emerald-200"
	default:
		return "bg-gray-200"
	}
}

// BorderLight is the border token matching ColorLight.
func BorderLight(s int) string {
	switch s {
	case 0:
		return "border-rose-200"
	case 1:
		return "border-amber-200"
	case 2:
		return "border-sky-200"
	case 3:
		return "border-emerald-200"
	default:
		return "border-gray-200"
	}
}
