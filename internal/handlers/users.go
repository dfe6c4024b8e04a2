package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justicelink/justicelink/internal/services"
	"github.com/justicelink/justicelink/internal/utils"
	"gorm.io/gorm"
)

// UserHandler handles user lookup routes
type UserHandler struct {
	DB *gorm.DB
}

// GetUser handles GET /api/user/:id
// @Summary Get a user by id
// @Tags Users
// @Produce json
// @Security CookieAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := services.FindUserByID(h.DB, c.Params("id"))
	if err != nil {
		return storeError(c, err, "users.get")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// SearchUsers handles GET /api/users/search?email=
// @Summary Search users by email substring
// @Description The query must be at least 3 characters long
// @Tags Users
// @Produce json
// @Security CookieAuth
// @Param email query string true "Partial email"
// @Success 200 {array} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /users/search [get]
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	query := c.Query("email", "")
	if len(query) < services.MinEmailQueryLength {
		return utils.ErrorResponse(c, "Email query must be at least 3 characters long",
			fiber.StatusBadRequest, "users.search")
	}

	users, err := services.SearchUsersByEmail(h.DB, query)
	if err != nil {
		return storeError(c, err, "users.search")
	}
	return c.Status(fiber.StatusOK).JSON(users)
}
