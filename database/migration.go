package database

import (
	"fmt"

	"hotel-reservation/models/auditlog"
	"hotel-reservation/models/company"
	"hotel-reservation/models/coupon"
	"hotel-reservation/models/hotel"
	"hotel-reservation/models/imagelist"
	"hotel-reservation/models/reservation"
	"hotel-reservation/models/room"
	"hotel-reservation/models/user"

	"gorm.io/gorm"
)

// Migrate runs auto migration for all models, staged so referenced tables
// exist before the tables that point at them.
func Migrate(db *gorm.DB) error {
	// Stage 1: Core foundation models
	stage1Models := []interface{}{
		&user.User{},
		&user.UserRole{},
		&company.Company{},
		&room.RoomType{},
	}

	for _, model := range stage1Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: Models with dependencies on Stage 1
	stage2Models := []interface{}{
		&hotel.Hotel{},
		&hotel.HotelAmenity{},
		&imagelist.ImageList{},
		&room.Room{},
		&coupon.Coupon{},
	}

	for _, model := range stage2Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: Remaining models
	remainingModels := []interface{}{
		&reservation.Reservation{},
		&reservation.ReservationRoom{},
		&auditlog.AuditLog{},
	}

	for _, model := range remainingModels {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes(db *gorm.DB) error {
	indexes := []struct {
		name string
		sql  string
	}{
		{"idx_rooms_hotel_available", "CREATE INDEX IF NOT EXISTS idx_rooms_hotel_available ON rooms(hotel_id, is_available)"},
		{"idx_rooms_room_type", "CREATE INDEX IF NOT EXISTS idx_rooms_room_type ON rooms(room_type_id)"},
		{"idx_reservations_user", "CREATE INDEX IF NOT EXISTS idx_reservations_user ON reservations(user_id)"},
		{"idx_reservations_hotel", "CREATE INDEX IF NOT EXISTS idx_reservations_hotel ON reservations(hotel_id)"},
		{"idx_coupons_code", "CREATE INDEX IF NOT EXISTS idx_coupons_code ON coupons(code)"},
		{"idx_hotels_company", "CREATE INDEX IF NOT EXISTS idx_hotels_company ON hotels(company_id)"},
		{"idx_image_lists_hotel", "CREATE INDEX IF NOT EXISTS idx_image_lists_hotel ON image_lists(hotel_id)"},
		{"idx_audit_logs_created_at", "CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
