package repository

import (
	"mime/multipart"

	"hotel-reservation/models/hotel"
	"hotel-reservation/storage"

	"gorm.io/gorm"
)

// HotelRepository adds the image-bound operations the company area needs. The
// cover image is a single slot; replacing it deletes the previous file.
type HotelRepository struct {
	*Repository[hotel.Hotel]
	images *storage.ImageStore
}

func NewHotelRepository(db *gorm.DB, images *storage.ImageStore) *HotelRepository {
	return &HotelRepository{Repository: New[hotel.Hotel](db), images: images}
}

// CreateWithImage persists the hotel first so the image folder can be keyed
// by its id, then stores the cover image.
func (r *HotelRepository) CreateWithImage(h *hotel.Hotel, cover *multipart.FileHeader) error {
	if err := r.Create(h); err != nil {
		return err
	}
	if cover == nil {
		return nil
	}
	path, err := r.images.SaveHotelImage(h.ID, cover)
	if err != nil {
		return err
	}
	h.CoverImg = path
	return r.Update(h)
}

// UpdateImage saves the hotel's fields and, when a new cover is uploaded,
// swaps the cover image slot.
func (r *HotelRepository) UpdateImage(h *hotel.Hotel, cover *multipart.FileHeader, oldCover string) error {
	if cover != nil {
		if oldCover != "" {
			if err := r.images.Delete(oldCover); err != nil {
				return err
			}
		}
		path, err := r.images.SaveHotelImage(h.ID, cover)
		if err != nil {
			return err
		}
		h.CoverImg = path
	}
	return r.Update(h)
}

// DeleteWithImage removes the hotel record and its cover image file.
func (r *HotelRepository) DeleteWithImage(h *hotel.Hotel) error {
	if h.CoverImg != "" {
		if err := r.images.Delete(h.CoverImg); err != nil {
			return err
		}
	}
	return r.Delete(h)
}
