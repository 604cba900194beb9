package admin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-reservation/constants"
	"hotel-reservation/logger"
	"hotel-reservation/middleware"
	userModel "hotel-reservation/models/user"
	"hotel-reservation/repository"
	"hotel-reservation/types"
	userTypes "hotel-reservation/types/user"
	"hotel-reservation/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserController handles the admin user-management endpoints.
type UserController struct {
	Users  *repository.UserRepository
	Logger *logger.AsyncLogger
}

func NewUserController(users *repository.UserRepository, asyncLogger *logger.AsyncLogger) *UserController {
	return &UserController{Users: users, Logger: asyncLogger}
}

func (uc *UserController) audit(c *fiber.Ctx, action, detail string) {
	actor := "unknown"
	if auth, ok := middleware.AuthFromCtx(c); ok {
		actor = auth.Username
	}
	uc.Logger.Log(actor, action, "User", detail)
}

// Index lists users with their roles, filtered by the search text and paged.
func (uc *UserController) Index(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	users, err := uc.Users.Get(repository.Preload("Roles"), repository.Order("id ASC"))
	if err != nil {
		logger.Error("Failed to list users", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := make([]userModel.User, 0, len(users))
		for _, u := range users {
			if matchesUser(u, needle) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	total := int64(len(users))
	start := (page - 1) * constants.AdminUserPageSize
	if start > len(users) {
		start = len(users)
	}
	end := start + constants.AdminUserPageSize
	if end > len(users) {
		end = len(users)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Users fetched successfully",
		Data: types.PagedData{
			Items:      users[start:end],
			Page:       page,
			PageSize:   constants.AdminUserPageSize,
			TotalItems: total,
			Search:     search,
		},
	})
}

func matchesUser(u userModel.User, needle string) bool {
	if strings.Contains(strings.ToLower(u.Username), needle) ||
		strings.Contains(strings.ToLower(u.Email), needle) {
		return true
	}
	if u.Phone != nil && strings.Contains(strings.ToLower(*u.Phone), needle) {
		return true
	}
	for _, r := range u.Roles {
		if strings.Contains(strings.ToLower(r.Role), needle) {
			return true
		}
	}
	return false
}

// Lockout toggles a user's lockout: locked users are unlocked, unlocked users
// are locked far into the future.
func (uc *UserController) Lockout(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid user id",
			Status:  fiber.StatusBadRequest,
		})
	}

	u, err := uc.Users.GetOne(repository.Where("id = ?", id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userNotFound(c)
		}
		logger.Error("Failed to find user", err)
		return internalError(c)
	}

	var message string
	if u.Locked() {
		past := time.Now().Add(-time.Minute)
		u.LockoutEnd = &past
		message = "User unlocked successfully."
	} else {
		future := time.Now().AddDate(100, 0, 0)
		u.LockoutEnd = &future
		message = "User locked successfully."
	}

	if err := uc.Users.Update(u); err != nil {
		logger.Error("Failed to update lockout", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Identity operation failed",
			Status:  fiber.StatusBadRequest,
		})
	}

	uc.audit(c, "Lockout", fmt.Sprintf("%s %s", u.Email, message))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: message,
		Data:    u,
	})
}

// Edit updates a user's fields and profile image, then reassigns its single
// role: all existing assignments are removed and the submitted one is added.
func (uc *UserController) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid user id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req userTypes.UserEditRequest
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

	u, err := uc.Users.GetOne(repository.Where("id = ?", id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userNotFound(c)
		}
		logger.Error("Failed to find user", err)
		return internalError(c)
	}

	if file, err := c.FormFile("profile_image"); err == nil && file != nil {
		if err := uc.Users.UpdateProfileImage(u, file); err != nil {
			logger.Error("Failed to update profile image", err)
			return internalError(c)
		}
	}

	u.Email = req.Email
	u.City = req.City
	if req.Phone != "" {
		u.Phone = &req.Phone
	} else {
		u.Phone = nil
	}

	if err := uc.Users.Update(u); err != nil {
		logger.Error("Failed to update user", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Identity operation failed",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := uc.Users.ReplaceRoles(u.ID, req.Role); err != nil {
		logger.Error("Failed to reassign role", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Identity operation failed",
			Status:  fiber.StatusBadRequest,
		})
	}

	uc.audit(c, "Edit", u.Email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User updated successfully.",
		Data:    u,
	})
}

// Delete removes a user, its role rows and its profile images.
func (uc *UserController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid user id",
			Status:  fiber.StatusBadRequest,
		})
	}

	u, err := uc.Users.GetOne(repository.Where("id = ?", id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userNotFound(c)
		}
		logger.Error("Failed to find user", err)
		return internalError(c)
	}

	if err := uc.Users.DeleteWithProfile(u); err != nil {
		logger.Error("Failed to delete user", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Identity operation failed",
			Status:  fiber.StatusBadRequest,
		})
	}

	uc.audit(c, "Delete", u.Email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User deleted successfully.",
		Data:    nil,
	})
}

func userNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
		Status:  fiber.StatusNotFound,
		Message: "User not found",
		Data:    nil,
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Internal server error",
		Data:    nil,
	})
}
