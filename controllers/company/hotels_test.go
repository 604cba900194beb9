package company

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-reservation/logger"
	companyModel "hotel-reservation/models/company"
	hotelModel "hotel-reservation/models/hotel"
	"hotel-reservation/models/imagelist"
	"hotel-reservation/models/room"
	"hotel-reservation/repository"
	"hotel-reservation/storage"
	"hotel-reservation/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *storage.ImageStore) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&companyModel.Company{},
		&hotelModel.Hotel{},
		&hotelModel.HotelAmenity{},
		&imagelist.ImageList{},
		&room.RoomType{},
		&room.Room{},
	))

	require.NoError(t, db.Create(&companyModel.Company{Name: "Stays Ltd", UserName: "stays"}).Error)

	images := storage.NewImageStore(t.TempDir())
	ctrl := NewHotelController(db,
		repository.NewHotelRepository(db, images),
		repository.NewImageListRepository(db, images),
		repository.NewCompanyRepository(db),
		logger.NewAsyncLogger(db),
	)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("auth", types.AuthContext{UserID: 1, Username: "stays", Roles: []string{"company"}})
		return c.Next()
	})
	app.Get("/hotels", ctrl.Index)
	app.Get("/hotels/:id", ctrl.Details)
	app.Post("/hotels", ctrl.Create)
	app.Put("/hotels/:id", ctrl.Edit)
	app.Delete("/hotels/:id", ctrl.Delete)
	app.Post("/hotels/:id/images", ctrl.ImageCreate)
	app.Delete("/hotels/:id/images", ctrl.ImageDeleteAll)
	return app, db, images
}

func hotelForm(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, name := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestCreateHotelWithCoverAndAmenities(t *testing.T) {
	app, db, _ := setupApp(t)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("name", "Sea View"))
	require.NoError(t, w.WriteField("address", "1 Shore Rd"))
	require.NoError(t, w.WriteField("city", "Alexandria"))
	require.NoError(t, w.WriteField("amenities", "Pool"))
	require.NoError(t, w.WriteField("amenities", "Wifi"))
	part, err := w.CreateFormFile("cover_img", "cover.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/hotels", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var h hotelModel.Hotel
	require.NoError(t, db.Preload("Amenities").Where("name = ?", "Sea View").First(&h).Error)
	assert.Equal(t, uint(1), h.CompanyID)
	assert.NotEmpty(t, h.CoverImg)
	assert.Len(t, h.Amenities, 2)
}

func TestIndexOnlyShowsOwnHotelsAndSearch(t *testing.T) {
	app, db, _ := setupApp(t)
	require.NoError(t, db.Create(&companyModel.Company{Name: "Rival", UserName: "rival"}).Error)
	require.NoError(t, db.Create(&hotelModel.Hotel{Name: "Mine A", Address: "a", City: "Cairo", CompanyID: 1}).Error)
	require.NoError(t, db.Create(&hotelModel.Hotel{Name: "Mine B", Address: "b", City: "Luxor", CompanyID: 1}).Error)
	require.NoError(t, db.Create(&hotelModel.Hotel{Name: "Theirs", Address: "c", City: "Cairo", CompanyID: 2}).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/hotels", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Items      []hotelModel.Hotel `json:"items"`
			TotalItems int64              `json:"total_items"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body.Data.TotalItems)

	resp, err = app.Test(httptest.NewRequest("GET", "/hotels?search=luxor", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body.Data.Items = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "Mine B", body.Data.Items[0].Name)
}

func TestDetailsIncludesRelations(t *testing.T) {
	app, db, _ := setupApp(t)

	h := hotelModel.Hotel{Name: "Mine", Address: "a", City: "Cairo", CompanyID: 1,
		Amenities: []hotelModel.HotelAmenity{{Name: "Pool"}}}
	require.NoError(t, db.Create(&h).Error)
	rt := room.RoomType{Type: room.TypeDouble, PricePerNight: 100}
	require.NoError(t, db.Create(&rt).Error)
	require.NoError(t, db.Create(&room.Room{HotelID: h.ID, RoomTypeID: rt.ID, IsAvailable: true}).Error)
	require.NoError(t, db.Create(&imagelist.ImageList{HotelID: h.ID, ImgURL: "hotels/1/x.jpg"}).Error)

	resp, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/hotels/%d", h.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data hotelModel.Hotel `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data.Amenities, 1)
	assert.Len(t, body.Data.Rooms, 1)
	assert.Len(t, body.Data.ImageLists, 1)
	assert.Equal(t, uint(rt.ID), body.Data.Rooms[0].RoomType.ID)
}

func TestDetailsOfForeignHotelIs404(t *testing.T) {
	app, db, _ := setupApp(t)
	require.NoError(t, db.Create(&companyModel.Company{Name: "Rival", UserName: "rival"}).Error)
	theirs := hotelModel.Hotel{Name: "Theirs", Address: "c", City: "Cairo", CompanyID: 2}
	require.NoError(t, db.Create(&theirs).Error)

	resp, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/hotels/%d", theirs.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteHotelClearsRowsAndFolder(t *testing.T) {
	app, db, images := setupApp(t)

	h := hotelModel.Hotel{Name: "Mine", Address: "a", City: "Cairo", CompanyID: 1}
	require.NoError(t, db.Create(&h).Error)

	body, contentType := hotelForm(t, nil, map[string]string{"images": "a.jpg"})
	req := httptest.NewRequest("POST", fmt.Sprintf("/hotels/%d/images", h.ID), body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.True(t, images.HotelFolderExists(h.ID))

	resp, err = app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/hotels/%d", h.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var hotels, rows int64
	require.NoError(t, db.Model(&hotelModel.Hotel{}).Where("id = ?", h.ID).Count(&hotels).Error)
	require.NoError(t, db.Model(&imagelist.ImageList{}).Where("hotel_id = ?", h.ID).Count(&rows).Error)
	assert.Zero(t, hotels)
	assert.Zero(t, rows)
	assert.False(t, images.HotelFolderExists(h.ID), "the image folder goes with the hotel")
}

func TestEditSwapsCoverAndReplacesAmenities(t *testing.T) {
	app, db, _ := setupApp(t)

	h := hotelModel.Hotel{Name: "Mine", Address: "a", City: "Cairo", CompanyID: 1,
		Amenities: []hotelModel.HotelAmenity{{Name: "Pool"}, {Name: "Gym"}}}
	require.NoError(t, db.Create(&h).Error)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("name", "Renamed"))
	require.NoError(t, w.WriteField("address", "a"))
	require.NoError(t, w.WriteField("city", "Cairo"))
	require.NoError(t, w.WriteField("amenities", "Spa"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("PUT", fmt.Sprintf("/hotels/%d", h.ID), body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var edited hotelModel.Hotel
	require.NoError(t, db.Preload("Amenities").First(&edited, h.ID).Error)
	assert.Equal(t, "Renamed", edited.Name)
	require.Len(t, edited.Amenities, 1)
	assert.Equal(t, "Spa", edited.Amenities[0].Name)
}
