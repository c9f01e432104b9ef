package models

import "github.com/uptrace/bun"

type Permission struct {
	bun.BaseModel `bun:"table:permissions,alias:permission"`

	ID          int64   `bun:"id,pk,autoincrement"`
	Name        string  `bun:"name,unique,notnull"`
	Description *string `bun:"description"`
}
