package model

import (
	"time"
)

type Goal struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Stage       int        `db:"stage"`
	Deadline    *time.Time `db:"deadline"`
	GroupID     int64      `db:"group_id"`
}
