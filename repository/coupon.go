package repository

import (
	"hotel-reservation/models/coupon"

	"gorm.io/gorm"
)

type CouponRepository struct {
	*Repository[coupon.Coupon]
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{Repository: New[coupon.Coupon](db)}
}

// GetByCode looks a coupon up by its code.
func (r *CouponRepository) GetByCode(code string) (*coupon.Coupon, error) {
	return r.GetOne(Where("code = ?", code))
}
