package company

import (
	"errors"
	"fmt"
	"strings"

	"hotel-reservation/constants"
	"hotel-reservation/logger"
	"hotel-reservation/middleware"
	companyModel "hotel-reservation/models/company"
	hotelModel "hotel-reservation/models/hotel"
	"hotel-reservation/models/imagelist"
	"hotel-reservation/repository"
	"hotel-reservation/types"
	hotelTypes "hotel-reservation/types/hotel"
	"hotel-reservation/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HotelController handles the company area: a company manages only its own
// hotels, resolved from the authenticated account.
type HotelController struct {
	DB        *gorm.DB
	Hotels    *repository.HotelRepository
	Images    *repository.ImageListRepository
	Companies *repository.CompanyRepository
	Logger    *logger.AsyncLogger
}

func NewHotelController(db *gorm.DB, hotels *repository.HotelRepository, images *repository.ImageListRepository, companies *repository.CompanyRepository, asyncLogger *logger.AsyncLogger) *HotelController {
	return &HotelController{DB: db, Hotels: hotels, Images: images, Companies: companies, Logger: asyncLogger}
}

// company resolves the caller's company row. Accounts without one get a 403.
func (hc *HotelController) company(c *fiber.Ctx) (*companyModel.Company, error) {
	auth, ok := middleware.AuthFromCtx(c)
	if !ok {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
			Data:    nil,
		})
	}

	co, err := hc.Companies.ByUserName(auth.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Status:  fiber.StatusForbidden,
				Message: "No company is registered for this account",
				Data:    nil,
			})
		}
		logger.Error("Failed to resolve company", err)
		return nil, c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}
	return co, nil
}

// ownedHotel loads one hotel and verifies it belongs to the caller's company.
func (hc *HotelController) ownedHotel(c *fiber.Ctx, co *companyModel.Company, opts ...repository.QueryOption) (*hotelModel.Hotel, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid hotel id",
			Status:  fiber.StatusBadRequest,
		})
	}

	opts = append(opts, repository.Where("id = ? AND company_id = ?", id, co.ID))
	h, err := hc.Hotels.GetOne(opts...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Hotel not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to load hotel", err)
		return nil, c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}
	return h, nil
}

func (hc *HotelController) audit(c *fiber.Ctx, action, detail string) {
	actor := "unknown"
	if auth, ok := middleware.AuthFromCtx(c); ok {
		actor = auth.Username
	}
	hc.Logger.Log(actor, action, "Hotel", detail)
}

// Index lists the company's hotels, searchable by name, address or city.
func (hc *HotelController) Index(c *fiber.Ctx) error {
	co, err := hc.company(c)
	if co == nil {
		return err
	}

	search := strings.TrimSpace(c.Query("search"))
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	opts := []repository.QueryOption{repository.Where("company_id = ?", co.ID)}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		opts = append(opts, repository.Where(
			"LOWER(name) LIKE ? OR LOWER(address) LIKE ? OR LOWER(city) LIKE ?",
			like, like, like,
		))
	}

	total, err := hc.Hotels.Count(opts...)
	if err != nil {
		logger.Error("Failed to count hotels", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	listOpts := append(opts,
		repository.Order("id ASC"),
		repository.Paginate(page, constants.CompanyHotelPageSize),
	)
	hotels, err := hc.Hotels.Get(listOpts...)
	if err != nil {
		logger.Error("Failed to list hotels", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Hotels fetched successfully",
		Data: types.PagedData{
			Items:      hotels,
			Page:       page,
			PageSize:   constants.CompanyHotelPageSize,
			TotalItems: total,
			Search:     search,
		},
	})
}

// Details returns one hotel with its amenities, rooms and gallery included.
func (hc *HotelController) Details(c *fiber.Ctx) error {
	co, err := hc.company(c)
	if co == nil {
		return err
	}

	h, err := hc.ownedHotel(c, co,
		repository.Preload("Amenities"),
		repository.Preload("Rooms.RoomType"),
		repository.Preload("ImageLists"),
	)
	if h == nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Hotel fetched successfully",
		Data:    h,
	})
}

// Create adds a hotel for the caller's company. The multipart form carries the
// fields, the cover image and any amenity names.
func (hc *HotelController) Create(c *fiber.Ctx) error {
	co, err := hc.company(c)
	if co == nil {
		return err
	}

	var req hotelTypes.HotelUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if msgs := utils.ValidateStruct(req); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Validation failed",
			Status:  fiber.StatusBadRequest,
			Errors:  msgs,
		})
	}

	h := hotelModel.Hotel{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		CompanyID: co.ID,
	}
	for _, name := range amenityNames(c) {
		h.Amenities = append(h.Amenities, hotelModel.HotelAmenity{Name: name})
	}

	cover, _ := c.FormFile("cover_img")
	if err := hc.Hotels.CreateWithImage(&h, cover); err != nil {
		logger.Error("Failed to create hotel", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create hotel",
			Data:    nil,
		})
	}

	hc.audit(c, "Create", h.Name)
	logger.Success(fmt.Sprintf("Hotel created successfully with ID: %d", h.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Hotel created successfully",
		Data:    h,
	})
}

// Edit updates a hotel's fields, replaces its amenities with the submitted set
// and swaps the cover image when a new one is uploaded.
func (hc *HotelController) Edit(c *fiber.Ctx) error {
	co, err := hc.company(c)
	if co == nil {
		return err
	}

	h, err := hc.ownedHotel(c, co)
	if h == nil {
		return err
	}

	var req hotelTypes.HotelUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if msgs := utils.ValidateStruct(req); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Validation failed",
			Status:  fiber.StatusBadRequest,
			Errors:  msgs,
		})
	}

	oldCover := h.CoverImg
	h.Name = req.Name
	h.Address = req.Address
	h.City = req.City

	cover, _ := c.FormFile("cover_img")
	if err := hc.Hotels.UpdateImage(h, cover, oldCover); err != nil {
		logger.Error("Failed to update hotel", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update hotel",
			Data:    nil,
		})
	}

	if names := amenityNames(c); names != nil {
		if err := hc.replaceAmenities(h.ID, names); err != nil {
			logger.Error("Failed to update amenities", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to update hotel",
				Data:    nil,
			})
		}
	}

	hc.audit(c, "Edit", h.Name)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Hotel updated successfully",
		Data:    h,
	})
}

// Delete removes a hotel: its gallery rows, its image folder, its cover file
// and the record itself. Database rows go in one transaction; files are
// removed after the rows are gone.
func (hc *HotelController) Delete(c *fiber.Ctx) error {
	co, err := hc.company(c)
	if co == nil {
		return err
	}

	h, err := hc.ownedHotel(c, co)
	if h == nil {
		return err
	}

	err = hc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", h.ID).Delete(&imagelist.ImageList{}).Error; err != nil {
			return err
		}
		return tx.Delete(h).Error
	})
	if err != nil {
		logger.Error("Failed to delete hotel", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete hotel",
			Data:    nil,
		})
	}

	if err := hc.Images.RemoveFolder(h.ID); err != nil {
		logger.Error("Failed to remove hotel image folder", err)
	}

	hc.audit(c, "Delete", h.Name)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Hotel deleted successfully",
		Data:    nil,
	})
}

// ImageIndex lists a hotel's gallery rows.
func (hc *HotelController) ImageIndex(c *fiber.Ctx) error {
	co, err := hc.company(c)
	if co == nil {
		return err
	}

	h, err := hc.ownedHotel(c, co)
	if h == nil {
		return err
	}

	images, err := hc.Images.Get(
		repository.Where("hotel_id = ?", h.ID),
		repository.Order("id ASC"),
	)
	if err != nil {
		logger.Error("Failed to list images", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Images fetched successfully",
		Data:    images,
	})
}

// ImageCreate stores every file uploaded under the "images" field.
func (hc *HotelController) ImageCreate(c *fiber.Ctx) error {
	co, err := hc.company(c)
	if co == nil {
		return err
	}

	h, err := hc.ownedHotel(c, co)
	if h == nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid multipart form",
			Status:  fiber.StatusBadRequest,
		})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "No images were uploaded",
			Status:  fiber.StatusBadRequest,
		})
	}

	created, err := hc.Images.CreateImages(h.ID, files)
	if err != nil {
		logger.Error("Failed to store images", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to store images",
			Data:    nil,
		})
	}

	hc.audit(c, "ImageCreate", fmt.Sprintf("%s (%d images)", h.Name, len(created)))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Images uploaded successfully",
		Data:    created,
	})
}

// ImageDelete removes one gallery image.
func (hc *HotelController) ImageDelete(c *fiber.Ctx) error {
	co, err := hc.company(c)
	if co == nil {
		return err
	}

	h, err := hc.ownedHotel(c, co)
	if h == nil {
		return err
	}

	imageID, err := c.ParamsInt("imageId")
	if err != nil || imageID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid image id",
			Status:  fiber.StatusBadRequest,
		})
	}

	img, err := hc.Images.GetOne(repository.Where("id = ? AND hotel_id = ?", imageID, h.ID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Image not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to load image", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if err := hc.Images.DeleteImage(img.ID); err != nil {
		logger.Error("Failed to delete image", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete image",
			Data:    nil,
		})
	}

	hc.audit(c, "ImageDelete", fmt.Sprintf("%s image %d", h.Name, img.ID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Image deleted successfully",
		Data:    nil,
	})
}

// ImageDeleteAll clears a hotel's gallery rows and its image folder.
func (hc *HotelController) ImageDeleteAll(c *fiber.Ctx) error {
	co, err := hc.company(c)
	if co == nil {
		return err
	}

	h, err := hc.ownedHotel(c, co)
	if h == nil {
		return err
	}

	if err := hc.Images.DeleteHotelFolder(h.ID); err != nil {
		logger.Error("Failed to delete images", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete images",
			Data:    nil,
		})
	}

	hc.audit(c, "ImageDeleteAll", h.Name)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "All images deleted successfully",
		Data:    nil,
	})
}

func (hc *HotelController) replaceAmenities(hotelID uint, names []string) error {
	return hc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&hotelModel.HotelAmenity{}).Error; err != nil {
			return err
		}
		for _, name := range names {
			if err := tx.Create(&hotelModel.HotelAmenity{HotelID: hotelID, Name: name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// amenityNames reads the repeated "amenities" form field. A nil result means
// the field was absent, an empty slice means it was submitted empty.
func amenityNames(c *fiber.Ctx) []string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	values, ok := form.Value["amenities"]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			names = append(names, v)
		}
	}
	return names
}
