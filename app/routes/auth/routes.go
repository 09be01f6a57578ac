package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// SetupAuthRoutes registers the authentication endpoints.
func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)

	protected := app.Group("/api/auth")
	protected.Use(AuthMiddleware)
	protected.Get("/me", MeAPI)
	protected.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT and sets the user and tenant context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token"})
	}

	user := &models.User{
		ID:        claims.UserID,
		SchoolID:  claims.SchoolID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsActive:  true,
	}
	roles := make([]*models.Role, len(claims.Roles))
	for i, name := range claims.Roles {
		roles[i] = &models.Role{Name: name}
	}
	user.Roles = roles

	c.Locals("user", user)
	c.Locals("user_id", user.ID)
	c.Locals("school_id", user.SchoolID)
	c.Locals("user_roles", roles)

	return c.Next()
}

// RoleMiddleware rejects requests from users without one of the allowed roles.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRoles, ok := c.Locals("user_roles").([]*models.Role)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
		}
		for _, userRole := range userRoles {
			for _, allowed := range allowedRoles {
				if userRole.Name == allowed {
					return c.Next()
				}
			}
		}
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
	}
}

// SchoolID returns the tenant id set by AuthMiddleware. Handlers pass this
// explicitly into every query and aggregation call.
func SchoolID(c *fiber.Ctx) string {
	id, _ := c.Locals("school_id").(string)
	return id
}
