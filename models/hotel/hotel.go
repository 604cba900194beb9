package hotel

import (
	"time"

	"hotel-reservation/models/imagelist"
	"hotel-reservation/models/room"
)

// Hotel belongs to one company. The cover image is a single slot distinct from
// the ImageLists gallery; both live under the hotel's id-keyed storage folder.
type Hotel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Address  string `gorm:"type:varchar(255);not null" json:"address"`
	City     string `gorm:"type:varchar(255);not null" json:"city"`
	CoverImg string `gorm:"type:varchar(2048)" json:"cover_img"`

	// Foreign key for company relationship
	CompanyID uint `gorm:"not null;index" json:"company_id"`

	Rooms      []room.Room           `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
	Amenities  []HotelAmenity        `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"amenities,omitempty"`
	ImageLists []imagelist.ImageList `gorm:"foreignKey:HotelID" json:"image_lists,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// HotelAmenity is a named feature shown on the hotel page.
type HotelAmenity struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	HotelID uint   `gorm:"not null;index" json:"hotel_id"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Icon    string `gorm:"type:varchar(255)" json:"icon"`
}
