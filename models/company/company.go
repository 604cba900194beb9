package company

import (
	"time"

	"hotel-reservation/models/hotel"
)

// Company owns hotels. UserName links the company to its owning account.
type Company struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	UserName string `gorm:"type:varchar(255);not null;unique" json:"user_name"`

	Hotels []hotel.Hotel `gorm:"foreignKey:CompanyID" json:"hotels,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
