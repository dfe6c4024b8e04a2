package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/justicelink/justicelink/internal/middleware"
	"github.com/justicelink/justicelink/internal/models"
	"github.com/justicelink/justicelink/internal/services"
	"github.com/justicelink/justicelink/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles registration, login and session routes
type AuthHandler struct {
	DB       *gorm.DB
	Sessions *session.Store
}

// RegisterInput is the POST /api/register request body
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// LoginInput is the POST /api/login request body
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/register
// @Summary Register a new account
// @Description Create a user with one of the four professional roles
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterInput true "Registration fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "auth.register")
	}
	if input.Email == "" || input.Password == "" || input.FullName == "" || input.Role == "" {
		return utils.ErrorResponse(c, "Missing required fields", fiber.StatusBadRequest, "auth.register")
	}
	if !models.ValidRole(models.Role(input.Role)) {
		return utils.ErrorResponse(c, "Invalid role", fiber.StatusBadRequest, "auth.register")
	}

	userID, err := services.CreateUser(h.DB, input.Email, input.Password, input.FullName, models.Role(input.Role))
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			return utils.ErrorResponse(c, "User with this email already exists", fiber.StatusConflict, "auth.register")
		}
		return storeError(c, err, "auth.register")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user_id": userID,
	})
}

// Login handles POST /api/login
// @Summary Log in
// @Description Verify credentials and open a server-side session
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginInput true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "auth.login")
	}
	if input.Email == "" || input.Password == "" {
		return utils.ErrorResponse(c, "Email and password are required", fiber.StatusBadRequest, "auth.login")
	}

	user, err := services.FindUserByEmail(h.DB, input.Email)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return storeError(c, err, "auth.login")
	}
	if err != nil || !services.VerifyPassword(user.HashedPassword, input.Password) {
		// Identical response whether the account or the password was wrong.
		return utils.ErrorResponse(c, "Invalid email or password", fiber.StatusUnauthorized, "auth.login")
	}

	sess, err := h.Sessions.Get(c)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to open session", fiber.StatusInternalServerError, "auth.login")
	}
	if err := sess.Regenerate(); err != nil {
		return utils.ErrorResponse(c, "Failed to open session", fiber.StatusInternalServerError, "auth.login")
	}
	sess.Set(middleware.SessionUserID, user.UserID)
	sess.Set(middleware.SessionRole, string(user.Role))
	if err := sess.Save(); err != nil {
		return utils.ErrorResponse(c, "Failed to open session", fiber.StatusInternalServerError, "auth.login")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

// Logout handles POST /api/logout
// @Summary Log out
// @Description Destroy the caller's session
// @Tags Auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err == nil {
		if derr := sess.Destroy(); derr != nil {
			return utils.ErrorResponse(c, "Failed to close session", fiber.StatusInternalServerError, "auth.logout")
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logout successful"})
}

// Session handles GET /api/session
// @Summary Current session
// @Description Return the user record behind the active session
// @Tags Auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	user, err := services.FindUserByID(h.DB, callerID(c))
	if err != nil {
		return storeError(c, err, "auth.session")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": user})
}
