package reservation

import (
	"time"

	"hotel-reservation/models/hotel"
	"hotel-reservation/models/room"
	"hotel-reservation/models/user"
)

// Reservation records one booking of RoomCount rooms in a hotel.
type Reservation struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// Foreign key for hotel relationship
	HotelID uint        `gorm:"not null;index" json:"hotel_id"`
	Hotel   hotel.Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`

	Adults   int `gorm:"not null" json:"adults"`
	Children int `gorm:"not null;default:0" json:"children"`

	CheckInDate  time.Time `gorm:"not null" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"not null" json:"check_out_date"`

	RoomCount  int  `gorm:"not null" json:"room_count"`
	TotalPrice int  `gorm:"not null" json:"total_price"`
	IsPaid     bool `gorm:"not null;default:false" json:"is_paid"`

	ReservationRooms []ReservationRoom `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"reservation_rooms,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ReservationRoom links a reservation to one of its rooms.
type ReservationRoom struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReservationID uint      `gorm:"not null;index" json:"reservation_id"`
	RoomID        uint      `gorm:"not null;index" json:"room_id"`
	Room          room.Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
