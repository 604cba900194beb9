package repository

import (
	"mime/multipart"

	"hotel-reservation/models/imagelist"
	"hotel-reservation/storage"

	"gorm.io/gorm"
)

// ImageListRepository manages a hotel's gallery images: rows in image_lists
// plus the files in the hotel's id-keyed folder.
type ImageListRepository struct {
	*Repository[imagelist.ImageList]
	images *storage.ImageStore
}

func NewImageListRepository(db *gorm.DB, images *storage.ImageStore) *ImageListRepository {
	return &ImageListRepository{Repository: New[imagelist.ImageList](db), images: images}
}

// CreateImages stores each uploaded file and creates its gallery row.
func (r *ImageListRepository) CreateImages(hotelID uint, files []*multipart.FileHeader) ([]imagelist.ImageList, error) {
	created := make([]imagelist.ImageList, 0, len(files))
	for _, file := range files {
		path, err := r.images.SaveHotelImage(hotelID, file)
		if err != nil {
			return created, err
		}
		row := imagelist.ImageList{HotelID: hotelID, ImgURL: path}
		if err := r.Create(&row); err != nil {
			return created, err
		}
		created = append(created, row)
	}
	return created, nil
}

// DeleteImage removes one gallery row and its file.
func (r *ImageListRepository) DeleteImage(id uint) error {
	img, err := r.GetOne(Where("id = ?", id))
	if err != nil {
		return err
	}
	if err := r.images.Delete(img.ImgURL); err != nil {
		return err
	}
	return r.Delete(img)
}

// RemoveFolder deletes only the files under a hotel's image folder. Used when
// the rows were already removed in a surrounding transaction.
func (r *ImageListRepository) RemoveFolder(hotelID uint) error {
	return r.images.DeleteHotelFolder(hotelID)
}

// DeleteHotelFolder removes every gallery row of a hotel and the folder that
// holds the files.
func (r *ImageListRepository) DeleteHotelFolder(hotelID uint) error {
	if err := r.DB().Where("hotel_id = ?", hotelID).Delete(&imagelist.ImageList{}).Error; err != nil {
		return err
	}
	return r.images.DeleteHotelFolder(hotelID)
}
