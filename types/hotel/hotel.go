package hotel

// HotelUpsertRequest carries the multipart form fields for hotel create and
// edit; the cover image file travels separately.
type HotelUpsertRequest struct {
	Name    string `form:"name" json:"name" validate:"required,min=1,max=255"`
	Address string `form:"address" json:"address" validate:"required,min=1,max=255"`
	City    string `form:"city" json:"city" validate:"required,min=1,max=255"`
}
