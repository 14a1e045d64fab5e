package userController

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/rajdwivedi/aeonaxy-server/config"
	"github.com/rajdwivedi/aeonaxy-server/middleware"
	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/repository"
	"github.com/rajdwivedi/aeonaxy-server/utils"
)

// Handler carries the profile endpoints' dependencies.
type Handler struct {
	Users       *repository.UserRepo
	Enrollments *repository.EnrollmentManager
}

func NewHandler(users *repository.UserRepo, enrollments *repository.EnrollmentManager) *Handler {
	return &Handler{Users: users, Enrollments: enrollments}
}

// currentUser resolves the authenticated user from the uid the JWT
// middleware stored in the request context.
func (h *Handler) currentUser(c *fiber.Ctx) (models.User, bool) {
	uid, ok := c.Locals("uid").(string)
	if !ok {
		return models.User{}, false
	}
	user, err := h.Users.GetByUID(c.Context(), uid)
	if err != nil {
		return models.User{}, false
	}
	return user, true
}

// ViewProfile returns the authenticated user's profile with enrolled course
// ids resolved to titles.
func (h *Handler) ViewProfile(c *fiber.Ctx) error {
	user, ok := h.currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	titles, err := h.Enrollments.EnrolledCourseTitles(c.Context(), user)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", fiber.Map{
		"uid":             user.UID,
		"name":            user.Name,
		"email":           user.Email,
		"enrolledCourses": titles,
		"isActive":        user.IsActive,
		"emailVerified":   user.EmailVerified,
		"createdOn":       user.CreatedOn,
		"updatedOn":       user.UpdatedOn,
	})
}

// EnrolledCourses returns just the titles of the user's enrolled courses.
func (h *Handler) EnrolledCourses(c *fiber.Ctx) error {
	user, ok := h.currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	titles, err := h.Enrollments.EnrolledCourseTitles(c.Context(), user)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully.", titles)
}

// UpdateProfile applies a partial profile update. An email change marks the
// account unverified and triggers a fresh verification email; a password
// change re-hashes into the credential store.
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProfileUpdate").(*struct {
		Email           string `json:"email" form:"email"`
		UpdatedName     string `json:"updatedName" form:"updatedName"`
		UpdatedEmail    string `json:"updatedEmail" form:"updatedEmail"`
		UpdatedPassword string `json:"updatedPassword" form:"updatedPassword"`
		IsActive        *bool  `json:"isActive" form:"isActive"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	current, ok := h.currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	if current.Email != reqData.Email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own profile!", nil)
	}

	patch := models.UserUpdate{IsActive: reqData.IsActive}
	if reqData.UpdatedName != "" {
		patch.Name = &reqData.UpdatedName
	}
	if reqData.UpdatedEmail != "" {
		patch.Email = &reqData.UpdatedEmail
	}
	if fileHeader, err := c.FormFile("profileImage"); err == nil {
		if file, err := fileHeader.Open(); err == nil {
			data, readErr := io.ReadAll(file)
			file.Close()
			if readErr == nil {
				patch.ProfileImg = data
			}
		}
	}

	user, err := h.Users.Update(c.Context(), reqData.Email, patch)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if reqData.UpdatedPassword != "" {
		if err := utils.CheckPasswordStrength(reqData.UpdatedPassword); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.UpdatedPassword), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing updated password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
		}
		if err := h.Users.UpdatePasswordHash(c.Context(), user.ID, string(hashedPassword)); err != nil {
			return middleware.ErrorResponse(c, err)
		}
	}

	if reqData.UpdatedEmail != "" && reqData.UpdatedEmail != reqData.Email {
		verificationToken, err := middleware.GenerateToken(user.UID, middleware.VerificationTokenTTL, config.AppConfig.JWTKey)
		if err != nil {
			log.Printf("Error signing verification token: %v", err)
		} else {
			if err := h.Users.SaveVerificationToken(c.Context(), user.ID, verificationToken); err != nil {
				log.Printf("Error storing verification token: %v", err)
			}
			utils.SendVerificationEmail(user.Name, reqData.UpdatedEmail, verificationToken)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully.", nil)
}

// DeleteAccount removes the authenticated user together with the credential
// records and enrollment back-references.
func (h *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := h.currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := h.Users.Delete(c.Context(), user.ID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}
