package imagelist

import "time"

// ImageList is one gallery image of a hotel. The file itself lives in the
// hotel's id-keyed folder; ImgURL stores the relative path.
type ImageList struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	HotelID uint   `gorm:"not null;index" json:"hotel_id"`
	ImgURL  string `gorm:"type:varchar(2048);not null" json:"img_url"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
