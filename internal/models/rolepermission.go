package models

import "github.com/uptrace/bun"

// RolePermission links a user to a role and, optionally, to one permission
// of that role. The (user_id, role_id, permission_id) triple is unique.
type RolePermission struct {
	bun.BaseModel `bun:"table:role_permissions,alias:rp"`

	ID           int64       `bun:"id,pk,autoincrement"`
	UserID       int64       `bun:"user_id,notnull"`
	User         *User       `bun:"rel:belongs-to,join:user_id=id"`
	RoleID       int64       `bun:"role_id,notnull"`
	Role         *Role       `bun:"rel:belongs-to,join:role_id=id"`
	PermissionID *int64      `bun:"permission_id,nullzero"`
	Permission   *Permission `bun:"rel:belongs-to,join:permission_id=id"`
}
