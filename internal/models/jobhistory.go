package models

import (
	"github.com/uptrace/bun"
	"time"
)

type JobHistory struct {
	bun.BaseModel `bun:"table:job_histories"`

	ID          int64      `bun:"id,pk,autoincrement"`
	UserID      int64      `bun:"user_id,notnull"`
	User        *User      `bun:"rel:belongs-to,join:user_id=id"`
	Location    string     `bun:"location,notnull"`
	Description string     `bun:"description,notnull"`
	IsActive    bool       `bun:"is_active,notnull,default:true"`
	StartDate   time.Time  `bun:"start_date,notnull"`
	EndDate     *time.Time `bun:"end_date,nullzero"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull,default:current_timestamp"`
}

// IsCurrent reports whether the job is still running.
func (j *JobHistory) IsCurrent() bool {
	return j.EndDate == nil || j.EndDate.After(time.Now())
}
