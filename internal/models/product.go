package models

import (
	"github.com/uptrace/bun"
	"time"
)

type Product struct {
	bun.BaseModel `bun:"table:products"`

	ID        int64     `bun:"product_id,pk,autoincrement"`
	Name      string    `bun:"product_name,unique,notnull"`
	Amount    float64   `bun:"product_amount,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
