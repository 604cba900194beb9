package repository

import (
	"mime/multipart"

	"hotel-reservation/models/user"
	"hotel-reservation/storage"

	"gorm.io/gorm"
)

// UserRepository adds profile-image and role operations over the generic
// gateway.
type UserRepository struct {
	*Repository[user.User]
	images *storage.ImageStore
}

func NewUserRepository(db *gorm.DB, images *storage.ImageStore) *UserRepository {
	return &UserRepository{Repository: New[user.User](db), images: images}
}

// UpdateProfileImage stores the uploaded image and points the user at it,
// removing the previous file.
func (r *UserRepository) UpdateProfileImage(u *user.User, file *multipart.FileHeader) error {
	if file == nil {
		return nil
	}
	if u.ProfileImage != "" {
		if err := r.images.Delete(u.ProfileImage); err != nil {
			return err
		}
	}
	path, err := r.images.SaveProfileImage(u.ID, file)
	if err != nil {
		return err
	}
	u.ProfileImage = path
	return nil
}

// ReplaceRoles removes every role assignment of the user and adds exactly
// one, atomically.
func (r *UserRepository) ReplaceRoles(userID uint, role string) error {
	return r.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&user.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Create(&user.UserRole{UserID: userID, Role: role}).Error
	})
}

// DeleteWithProfile removes the user record, its role rows and its profile
// image folder.
func (r *UserRepository) DeleteWithProfile(u *user.User) error {
	if err := r.DB().Where("user_id = ?", u.ID).Delete(&user.UserRole{}).Error; err != nil {
		return err
	}
	if err := r.Delete(u); err != nil {
		return err
	}
	return r.images.DeleteProfileFolder(u.ID)
}
