package coupon

import "time"

// Coupon is a flat-amount discount code with a remaining-use limit. ExpireDate
// is stored but booking only checks the limit.
type Coupon struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code       string     `gorm:"type:varchar(50);not null;unique" json:"code"`
	Discount   int        `gorm:"not null" json:"discount"`
	Limit      int        `gorm:"not null" json:"limit"`
	ExpireDate *time.Time `json:"expire_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
