package room

import "time"

// Room type categories
const (
	TypeSingle = "single"
	TypeDouble = "double"
	TypeSuite  = "suite"
	TypeFamily = "family"
)

// RoomType is a priced category shared by many physical rooms. MealPrice is
// optional; a nil meal price and a zero meal price are different offers.
type RoomType struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Type          string `gorm:"type:varchar(50);not null" json:"type"`
	PricePerNight int    `gorm:"not null" json:"price_per_night"`
	MealPrice     *int   `json:"meal_price,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Room is one bookable unit. IsAvailable flips to false when the room is
// consumed by a booking; no code path flips it back.
type Room struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Number string `gorm:"type:varchar(50)" json:"number"`

	// Foreign keys for hotel and room type relationships
	HotelID    uint     `gorm:"not null;index" json:"hotel_id"`
	RoomTypeID uint     `gorm:"not null;index" json:"room_type_id"`
	RoomType   RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type"`

	IsAvailable bool `gorm:"not null;default:true" json:"is_available"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
