package model

type Group struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	ToneID      int64  `db:"tone_id"`
	UserID      string `db:"user_id"`
}

// GroupDisplay is a read-only projection of a group joined with its tone,
// used for board rendering. Not persisted.
type GroupDisplay struct {
	ID            int64        `db:"id"`
	Title         string       `db:"title"`
	Description   string       `db:"description"`
	Stages        StageLabels  `db:"stages"`
	Greeting      string       `db:"greeting"`
	Deadline      DeadlineType `db:"deadline"`
	UnmetBehavior GoalBehavior `db:"unmet_behavior"`
}

// GroupLink is the minimal projection used for navigation sidebars.
type GroupLink struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
}
