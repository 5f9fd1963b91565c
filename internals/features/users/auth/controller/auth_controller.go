// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ems_backend/internals/databases"
	authDTO "ems_backend/internals/features/users/auth/dto"
	userModel "ems_backend/internals/features/users/auth/model"
	"ems_backend/internals/features/users/auth/service"
	helper "ems_backend/internals/helpers"
)

type AuthController struct {
	Registry  *databases.Registry
	JWTSecret string
}

func NewAuthController(registry *databases.Registry, jwtSecret string) *AuthController {
	return &AuthController{Registry: registry, JWTSecret: jwtSecret}
}

// ===================== LOGIN =====================
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, ok := h.Registry.Users.Find(func(u userModel.UserModel) bool {
		return strings.EqualFold(u.Email, email)
	})
	if !ok || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	now := time.Now()
	token, expiresAt, err := service.IssueAccessToken(h.JWTSecret, user, now)
	if err != nil {
		log.Printf("[ERROR] gagal membuat access token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create session")
	}

	// cookie untuk klien browser, selaras dengan fallback middleware
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return helper.JsonOK(c, "login success", authDTO.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
		User:        authDTO.ToUserResponse(user),
	})
}

// ===================== REGISTER =====================
// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, exists := h.Registry.Users.Find(func(u userModel.UserModel) bool {
		return strings.EqualFold(u.Email, email)
	}); exists {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] gagal hash password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not register account")
	}

	now := time.Now()
	user := userModel.UserModel{
		UserID:    "user-" + uuid.NewString(),
		UserName:  strings.TrimSpace(req.UserName),
		Email:     email,
		Password:  string(hashed),
		Role:      req.Role,
		Theme:     userModel.ThemeLight,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	h.Registry.Users.Prepend(user)

	return helper.JsonCreated(c, "account registered", authDTO.ToUserResponse(user))
}

// ===================== FORGOT PASSWORD =====================
// POST /api/auth/forgot-password
// Mock reset: selalu diterima, tidak membocorkan keberadaan email.
func (h *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req authDTO.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	return helper.JsonOK(c, "If the email is registered, a reset link has been sent", fiber.Map{
		"email": strings.ToLower(strings.TrimSpace(req.Email)),
	})
}

// ===================== LOGOUT =====================
// POST /api/a/logout
// Token masuk blacklist sampai kedaluwarsa, cookie dihapus.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("access_token").(string)
	if token != "" {
		h.Registry.Blacklist.Revoke(token, service.TokenExpiry(token))
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return helper.JsonOK(c, "logged out", nil)
}

// ===================== ME =====================
// GET /api/a/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	user, ok := h.Registry.Users.Get(userID)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Session user no longer exists")
	}
	return helper.JsonOK(c, "session user", authDTO.ToUserResponse(user))
}
