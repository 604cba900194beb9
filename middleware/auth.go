package middleware

import (
	"strings"

	"hotel-reservation/constants"
	"hotel-reservation/types"
	"hotel-reservation/utils"

	"github.com/gofiber/fiber/v2"
)

// IsAuthenticated validates the bearer token and attaches the caller's auth
// context. The token comes from the Authorization header, with the "access"
// cookie as fallback.
func IsAuthenticated(requiredRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var token string

		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
					Message: "Invalid authorization header format",
					Status:  fiber.StatusUnauthorized,
				})
			}
			token = tokenParts[1]
		} else {
			token = c.Cookies("access")
			if token == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
					Message: "Authorization token missing",
					Status:  fiber.StatusUnauthorized,
				})
			}
		}

		auth, err := utils.ParseToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Session expired. Login again.",
				Status:  fiber.StatusUnauthorized,
			})
		}

		allowed := false
		for _, role := range requiredRoles {
			if role == constants.RoleAny || auth.HasRole(role) {
				allowed = true
				break
			}
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Insufficient permissions",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals("auth", auth)
		return c.Next()
	}
}

// RequireRoles guards a route group with specific roles.
func RequireRoles(roles ...string) fiber.Handler {
	return IsAuthenticated(roles)
}

// RequireAuthentication only requires a valid token.
func RequireAuthentication() fiber.Handler {
	return IsAuthenticated([]string{constants.RoleAny})
}

// AuthFromCtx returns the auth context the middleware attached.
func AuthFromCtx(c *fiber.Ctx) (types.AuthContext, bool) {
	auth, ok := c.Locals("auth").(types.AuthContext)
	return auth, ok
}
