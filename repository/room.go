package repository

import (
	"hotel-reservation/models/room"

	"gorm.io/gorm"
)

// RoomRepository answers the availability queries of the booking workflow.
type RoomRepository struct {
	*Repository[room.Room]
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{Repository: New[room.Room](db)}
}

// ListByType returns a hotel's rooms of one category with their room type.
// No availability filter: this feeds the browse view.
func (r *RoomRepository) ListByType(hotelID uint, roomType string) ([]room.Room, error) {
	return r.Get(
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id"),
		Where("rooms.hotel_id = ? AND room_types.type = ?", hotelID, roomType),
		Preload("RoomType"),
		Order("rooms.id ASC"),
	)
}

func availabilityOptions(hotelID uint, roomType string, pricePerNight int, mealPrice *int) []QueryOption {
	opts := []QueryOption{
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id"),
		Where("rooms.hotel_id = ? AND rooms.is_available = ?", hotelID, true),
		Where("room_types.type = ? AND room_types.price_per_night = ?", roomType, pricePerNight),
	}
	// Meal price is optional; nil must match only rooms whose type has none.
	if mealPrice == nil {
		opts = append(opts, Where("room_types.meal_price IS NULL"))
	} else {
		opts = append(opts, Where("room_types.meal_price = ?", *mealPrice))
	}
	return opts
}

// AvailableByType returns the available rooms matching the full offer triple
// (category, nightly price, meal price), ordered by id so bookings consume
// rooms deterministically.
func (r *RoomRepository) AvailableByType(hotelID uint, roomType string, pricePerNight int, mealPrice *int) ([]room.Room, error) {
	opts := availabilityOptions(hotelID, roomType, pricePerNight, mealPrice)
	opts = append(opts, Preload("RoomType"), Order("rooms.id ASC"))
	return r.Get(opts...)
}

// MarkUnavailable flips one room's availability flag off.
func (r *RoomRepository) MarkUnavailable(roomID uint) error {
	return r.DB().Model(&room.Room{}).Where("id = ?", roomID).Update("is_available", false).Error
}

// CountAvailable re-derives the advisory availability count for an offer.
func (r *RoomRepository) CountAvailable(hotelID uint, roomType string, pricePerNight int, mealPrice *int) (int64, error) {
	return r.Count(availabilityOptions(hotelID, roomType, pricePerNight, mealPrice)...)
}
