package staff

import "time"

// Staff is a dashboard account. There is no self-service signup; accounts are
// seeded or provisioned by an admin, so no verification lifecycle exists.
type Staff struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `json:"name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	Password     *string `json:"-"` // nil for Google-only accounts
	AuthProvider string  `gorm:"default:'local'" json:"auth_provider"`
	GoogleSub    *string `gorm:"uniqueIndex" json:"-"`
	Role         string  `gorm:"default:'editor'" json:"role"` // admin | editor

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
