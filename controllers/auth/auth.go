package authController

import (
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/rajdwivedi/aeonaxy-server/config"
	"github.com/rajdwivedi/aeonaxy-server/middleware"
	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/repository"
	"github.com/rajdwivedi/aeonaxy-server/utils"
)

// Handler carries the auth endpoints' dependencies.
type Handler struct {
	Users *repository.UserRepo
}

func NewHandler(users *repository.UserRepo) *Handler {
	return &Handler{Users: users}
}

// readUploadedFile reads an optional multipart file field into memory.
func readUploadedFile(c *fiber.Ctx, field string) []byte {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded %s: %v", field, err)
		return nil
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading uploaded %s: %v", field, err)
		return nil
	}
	return data
}

func (h *Handler) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Name     string `json:"name" form:"name"`
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	details := models.UserDetails{
		Name:       reqData.Name,
		Email:      reqData.Email,
		ProfileImg: readUploadedFile(c, "profileImage"),
	}

	user, err := h.Users.Create(c.Context(), details, string(hashedPassword))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	// Send verification email and persist the token
	verificationToken, err := middleware.GenerateToken(user.UID, middleware.VerificationTokenTTL, config.AppConfig.JWTKey)
	if err != nil {
		log.Printf("Error signing verification token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}
	if err := h.Users.SaveVerificationToken(c.Context(), user.ID, verificationToken); err != nil {
		log.Printf("Error storing verification token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}
	utils.SendVerificationEmail(user.Name, user.Email, verificationToken)

	// Sign the user in: short-lived access token, long-lived refresh token
	accessToken, err := middleware.GenerateToken(user.UID, middleware.AccessTokenTTL, config.AppConfig.JWTKey)
	if err != nil {
		log.Printf("Error signing access token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}
	refreshToken, err := middleware.GenerateToken(user.UID, middleware.RefreshTokenTTL, config.AppConfig.RefreshKey)
	if err != nil {
		log.Printf("Error signing refresh token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		HTTPOnly: true,
		Expires:  time.Now().Add(middleware.RefreshTokenTTL),
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"uid":                     user.UID,
		"name":                    user.Name,
		"email":                   user.Email,
		"accessToken":             accessToken,
		"verificationEmailStatus": "sent",
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := h.Users.GetByEmail(c.Context(), reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid email or password!", nil)
	}

	hashedPassword, err := h.Users.GetPasswordHash(c.Context(), user.ID)
	if err != nil {
		log.Printf("Error loading password record for %s: %v", user.UID, err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid email or password!", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid email or password!", nil)
	}

	if err := h.Users.UpdateLastLogin(c.Context(), user.ID); err != nil {
		log.Printf("Error updating last login for %s: %v", user.UID, err)
	}

	accessToken, err := middleware.GenerateToken(user.UID, middleware.AccessTokenTTL, config.AppConfig.JWTKey)
	if err != nil {
		log.Printf("Error signing access token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}
	refreshToken, err := middleware.GenerateToken(user.UID, middleware.RefreshTokenTTL, config.AppConfig.RefreshKey)
	if err != nil {
		log.Printf("Error signing refresh token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		HTTPOnly: true,
		Expires:  time.Now().Add(middleware.RefreshTokenTTL),
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully.", fiber.Map{
		"uid":         user.UID,
		"name":        user.Name,
		"email":       user.Email,
		"accessToken": accessToken,
	})
}

// RefreshToken mints a new access token from the refresh token cookie.
func (h *Handler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refreshToken")
	if refreshToken == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	uid, err := middleware.ParseUID(refreshToken, config.AppConfig.RefreshKey)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Refresh token expired, sign in again!", nil)
	}

	accessToken, err := middleware.GenerateToken(uid, middleware.AccessTokenTTL, config.AppConfig.JWTKey)
	if err != nil {
		log.Printf("Error signing access token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token refreshed.", fiber.Map{
		"accessToken": accessToken,
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}

// VerifyEmail consumes the verification link from the email.
func (h *Handler) VerifyEmail(c *fiber.Ctx) error {
	email := c.Locals("tokenEmail").(string)
	token := c.Locals("tokenValue").(string)

	uid, err := middleware.ParseUID(token, config.AppConfig.JWTKey)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid verification token!", nil)
	}

	user, err := h.Users.GetByEmail(c.Context(), email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid verification token!", nil)
	}
	if user.UID != uid {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid verification token!", nil)
	}
	if user.EmailVerified {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Email already verified.", nil)
	}

	if err := h.Users.SetEmailVerified(c.Context(), email); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email verified successfully.", nil)
}

// ForgetPassword mails a reset link and records the token.
func (h *Handler) ForgetPassword(c *fiber.Ctx) error {
	email := c.Locals("validatedEmail").(string)

	user, err := h.Users.GetByEmail(c.Context(), email)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	token, err := middleware.GenerateToken(user.UID, middleware.ResetTokenTTL, config.AppConfig.JWTKey)
	if err != nil {
		log.Printf("Error signing reset token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	utils.SendPasswordResetEmail(user.Name, email, token)

	if err := h.Users.SaveResetToken(c.Context(), user.ID, token); err != nil {
		log.Printf("Error storing reset token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		"Password reset email sent. Open the link in the email to generate a random password for yourself.", nil)
}

// ResetPassword consumes the reset link: it verifies the token record and
// replaces the password with a generated one returned in the response.
func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	email := c.Locals("tokenEmail").(string)
	token := c.Locals("tokenValue").(string)

	user, err := h.resetTokenOwner(c, email, token)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid token!", nil)
	}

	newPassword := utils.GenerateRandomPassword(8)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing generated password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
	}

	if err := h.Users.UpdatePasswordHash(c.Context(), user.ID, string(hashedPassword)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully.", fiber.Map{
		"newPassword": newPassword,
	})
}

// InvalidateResetPassword kills an outstanding reset link.
func (h *Handler) InvalidateResetPassword(c *fiber.Ctx) error {
	email := c.Locals("tokenEmail").(string)
	token := c.Locals("tokenValue").(string)

	user, err := h.resetTokenOwner(c, email, token)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid token!", nil)
	}

	if err := h.Users.InvalidateResetToken(c.Context(), user.ID, token); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset link invalidated.", nil)
}

// resetTokenOwner validates a reset token against its signed uid and the
// stored token record, returning the owning user.
func (h *Handler) resetTokenOwner(c *fiber.Ctx, email, token string) (models.User, error) {
	uid, err := middleware.ParseUID(token, config.AppConfig.JWTKey)
	if err != nil {
		return models.User{}, err
	}
	user, err := h.Users.GetByEmail(c.Context(), email)
	if err != nil {
		return models.User{}, err
	}
	if user.UID != uid {
		return models.User{}, &repository.NotFoundError{Entity: "reset token"}
	}
	if err := h.Users.GetResetToken(c.Context(), user.ID, token); err != nil {
		return models.User{}, err
	}
	return user, nil
}
