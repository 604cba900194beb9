package repository

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"

	"hotel-reservation/models/coupon"
	"hotel-reservation/models/hotel"
	"hotel-reservation/models/imagelist"
	"hotel-reservation/models/user"
	"hotel-reservation/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&coupon.Coupon{},
		&hotel.Hotel{},
		&imagelist.ImageList{},
		&user.User{},
		&user.UserRole{},
	))
	return db
}

func uploadedFile(t *testing.T, name string) *multipart.FileHeader {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte("image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	require.Len(t, form.File["file"], 1)
	return form.File["file"][0]
}

func TestRepositoryQueryComposition(t *testing.T) {
	db := setupTestDB(t)
	repo := New[coupon.Coupon](db)

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Create(&coupon.Coupon{Code: fmt.Sprintf("C%d", i), Discount: i * 10, Limit: i}))
	}

	all, err := repo.Get(Order("id ASC"))
	require.NoError(t, err)
	assert.Len(t, all, 5)

	big, err := repo.Get(Where("discount >= ?", 30), Order("id ASC"))
	require.NoError(t, err)
	require.Len(t, big, 3)
	assert.Equal(t, "C3", big[0].Code)

	n, err := repo.Count(Where("discount >= ?", 30))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	page2, err := repo.Get(Order("id ASC"), Paginate(2, 2))
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, "C3", page2[0].Code)

	_, err = repo.GetOne(Where("code = ?", "missing"))
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryTransactionVisibility(t *testing.T) {
	db := setupTestDB(t)
	repo := New[coupon.Coupon](db)

	tx := repo.Begin()
	require.NoError(t, tx.Create(&coupon.Coupon{Code: "ROLLME", Discount: 5, Limit: 1}))
	require.NoError(t, tx.Rollback())

	_, err := repo.GetOne(Where("code = ?", "ROLLME"))
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	tx = repo.Begin()
	require.NoError(t, tx.Create(&coupon.Coupon{Code: "KEEPME", Discount: 5, Limit: 1}))
	require.NoError(t, tx.Commit())

	kept, err := repo.GetOne(Where("code = ?", "KEEPME"))
	require.NoError(t, err)
	assert.Equal(t, "KEEPME", kept.Code)
}

func TestHotelRepositoryCoverImageLifecycle(t *testing.T) {
	db := setupTestDB(t)
	images := storage.NewImageStore(t.TempDir())
	hotels := NewHotelRepository(db, images)

	h := hotel.Hotel{Name: "Old Cataract", Address: "3 Corniche", City: "Aswan", CompanyID: 1}
	require.NoError(t, hotels.CreateWithImage(&h, uploadedFile(t, "cover.jpg")))
	require.NotZero(t, h.ID)
	require.NotEmpty(t, h.CoverImg)
	assert.Contains(t, h.CoverImg, fmt.Sprintf("hotels/%d/", h.ID), "cover files live in the id-keyed folder")

	oldCover := h.CoverImg
	require.NoError(t, hotels.UpdateImage(&h, uploadedFile(t, "new.png"), oldCover))
	assert.NotEqual(t, oldCover, h.CoverImg)
	assert.True(t, strings.HasSuffix(h.CoverImg, ".png"))

	require.NoError(t, hotels.DeleteWithImage(&h))
	_, err := hotels.GetOne(Where("id = ?", h.ID))
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestImageListRepositoryDeleteHotelFolder(t *testing.T) {
	db := setupTestDB(t)
	images := storage.NewImageStore(t.TempDir())
	gallery := NewImageListRepository(db, images)

	h := hotel.Hotel{Name: "Winter Palace", Address: "4 Nile Ave", City: "Luxor", CompanyID: 1}
	require.NoError(t, db.Create(&h).Error)

	created, err := gallery.CreateImages(h.ID, []*multipart.FileHeader{
		uploadedFile(t, "a.jpg"),
		uploadedFile(t, "b.jpg"),
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	require.True(t, images.HotelFolderExists(h.ID))

	require.NoError(t, gallery.DeleteHotelFolder(h.ID))

	var rows int64
	require.NoError(t, db.Model(&imagelist.ImageList{}).Where("hotel_id = ?", h.ID).Count(&rows).Error)
	assert.Zero(t, rows)
	assert.False(t, images.HotelFolderExists(h.ID), "the id-keyed folder must be gone with the rows")
}

func TestUserRepositoryReplaceRolesKeepsExactlyOne(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db, storage.NewImageStore(t.TempDir()))

	u := user.User{
		Username:     "amira",
		Email:        "amira@example.com",
		PasswordHash: "x",
		Roles:        []user.UserRole{{Role: "customer"}, {Role: "company"}},
	}
	require.NoError(t, users.Create(&u))

	require.NoError(t, users.ReplaceRoles(u.ID, "admin"))

	var roles []user.UserRole
	require.NoError(t, db.Where("user_id = ?", u.ID).Find(&roles).Error)
	require.Len(t, roles, 1)
	assert.Equal(t, "admin", roles[0].Role)
}

func TestUserRepositoryDeleteWithProfile(t *testing.T) {
	db := setupTestDB(t)
	images := storage.NewImageStore(t.TempDir())
	users := NewUserRepository(db, images)

	u := user.User{
		Username:     "karim",
		Email:        "karim@example.com",
		PasswordHash: "x",
		Roles:        []user.UserRole{{Role: "customer"}},
	}
	require.NoError(t, users.Create(&u))
	require.NoError(t, users.UpdateProfileImage(&u, uploadedFile(t, "me.jpg")))
	require.NoError(t, users.Update(&u))

	require.NoError(t, users.DeleteWithProfile(&u))

	_, err := users.GetOne(Where("id = ?", u.ID))
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var roles int64
	require.NoError(t, db.Model(&user.UserRole{}).Where("user_id = ?", u.ID).Count(&roles).Error)
	assert.Zero(t, roles)
}
