package user

import (
	"time"
)

// User is the application identity record. City and profile image extend the
// plain credential fields; lockout is a timestamp so an expired lockout simply
// stops applying.
type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string  `gorm:"type:varchar(255);not null;unique" json:"username"`
	Email        string  `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null" json:"-"`
	Phone        *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	City         string  `gorm:"type:varchar(255)" json:"city"`
	ProfileImage string  `gorm:"type:varchar(2048)" json:"profile_image"`

	LockoutEnd *time.Time `gorm:"index" json:"lockout_end,omitempty"`

	Roles []UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"roles"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// UserRole assigns one named role to a user. The admin edit flow keeps exactly
// one row per user, but the schema does not forbid more.
type UserRole struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Role   string `gorm:"type:varchar(50);not null" json:"role"`
}

// Locked reports whether the user's lockout is currently in effect.
func (u *User) Locked() bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(time.Now())
}

// RoleNames flattens the role assignments for token claims.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Role)
	}
	return names
}
