package repository

import (
	"hotel-reservation/models/reservation"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	*Repository[reservation.Reservation]
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{Repository: New[reservation.Reservation](db)}
}

// ForUser loads one reservation of a user with the shape the payment bridge
// needs: its rooms and the hotel.
func (r *ReservationRepository) ForUser(userID, reservationID uint) ([]reservation.Reservation, error) {
	return r.Get(
		Where("user_id = ? AND id = ?", userID, reservationID),
		Preload("ReservationRooms"),
		Preload("Hotel"),
	)
}

// ListForUser returns a user's reservations, newest first.
func (r *ReservationRepository) ListForUser(userID uint) ([]reservation.Reservation, error) {
	return r.Get(
		Where("user_id = ?", userID),
		Preload("Hotel"),
		Order("id DESC"),
	)
}

// MarkPaid flags a user's unpaid reservations paid and reports how many rows
// changed.
func (r *ReservationRepository) MarkPaid(userID uint) (int64, error) {
	res := r.DB().Model(&reservation.Reservation{}).
		Where("user_id = ? AND is_paid = ?", userID, false).
		Update("is_paid", true)
	return res.RowsAffected, res.Error
}
