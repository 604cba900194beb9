package customer

import (
	"hotel-reservation/middleware"
	"hotel-reservation/types"

	"github.com/gofiber/fiber/v2"
)

func middlewareAuth(c *fiber.Ctx) (types.AuthContext, bool) {
	return middleware.AuthFromCtx(c)
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "Invalid user claims",
		Data:    nil,
	})
}
