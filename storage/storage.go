package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore writes uploaded images under a root directory. Folders are keyed
// by entity id, never by name, so renames cannot orphan them.
type ImageStore struct {
	root string
}

func NewImageStore(root string) *ImageStore {
	if root == "" {
		root = "uploads"
	}
	return &ImageStore{root: root}
}

func (s *ImageStore) hotelDir(hotelID uint) string {
	return filepath.Join(s.root, "hotels", fmt.Sprintf("%d", hotelID))
}

func (s *ImageStore) profileDir(userID uint) string {
	return filepath.Join(s.root, "profiles", fmt.Sprintf("%d", userID))
}

// SaveHotelImage stores one uploaded file in the hotel's folder and returns
// the relative path to persist.
func (s *ImageStore) SaveHotelImage(hotelID uint, file *multipart.FileHeader) (string, error) {
	return s.save(s.hotelDir(hotelID), filepath.Join("hotels", fmt.Sprintf("%d", hotelID)), file)
}

// SaveProfileImage stores a user's profile image and returns the relative path.
func (s *ImageStore) SaveProfileImage(userID uint, file *multipart.FileHeader) (string, error) {
	return s.save(s.profileDir(userID), filepath.Join("profiles", fmt.Sprintf("%d", userID)), file)
}

func (s *ImageStore) save(dir, relDir string, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(relDir, name)), nil
}

// Delete removes one stored file by its relative path. A missing file is not
// an error.
func (s *ImageStore) Delete(relPath string) error {
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return errors.New("invalid image path")
	}
	err := os.Remove(filepath.Join(s.root, clean))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// DeleteHotelFolder removes the hotel's entire image folder.
func (s *ImageStore) DeleteHotelFolder(hotelID uint) error {
	return os.RemoveAll(s.hotelDir(hotelID))
}

// DeleteProfileFolder removes a user's profile image folder.
func (s *ImageStore) DeleteProfileFolder(userID uint) error {
	return os.RemoveAll(s.profileDir(userID))
}

// HotelFolderExists reports whether the hotel still has a folder on disk.
func (s *ImageStore) HotelFolderExists(hotelID uint) bool {
	info, err := os.Stat(s.hotelDir(hotelID))
	return err == nil && info.IsDir()
}
