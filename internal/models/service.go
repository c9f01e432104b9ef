package models

import (
	"github.com/uptrace/bun"
	"time"
)

type Service struct {
	bun.BaseModel `bun:"table:services"`

	ID          int64     `bun:"service_id,pk,autoincrement"`
	Name        string    `bun:"service_name,unique,notnull"`
	TotalAmount float64   `bun:"total_amount,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
