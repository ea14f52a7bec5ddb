package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teamboard/internal/config"
	apperrors "teamboard/internal/errors"
	"teamboard/internal/logger"
	"teamboard/internal/services"
)

// defaultAvatar is the profile image every account starts with. It is
// never deleted from disk.
const defaultAvatar = "images/default-profile.jpg"

// allowedAvatarExts is the extension allow-list for avatar uploads.
var allowedAvatarExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// ProfileHandler handles the caller's own profile and avatar.
type ProfileHandler struct {
	userService services.UserServicer
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userService services.UserServicer) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// UpdateProfileRequest represents the payload for editing the caller's
// own profile. Limits mirror the profile form.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,max=20"`
	Bio   string `json:"bio" binding:"omitempty,max=100"`
	Email string `json:"email" binding:"required,email,max=50"`
}

// GetProfile returns the caller's profile
// @Summary     Get own profile
// @Tags        profile
// @Produce     json
// @Success     200 {object} models.User "Profile"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(principal.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile edits the caller's name, bio, and email
// @Summary     Update own profile
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       request body UpdateProfileRequest true "Profile fields"
// @Success     200 {object} models.User "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already taken"
// @Router      /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.UpdateProfile(principal.ID, req.Name, req.Bio, req.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UploadAvatar replaces the caller's profile picture. The upload must
// carry an allow-listed image extension; requests over the size cap are
// redirected back to the profile view instead of failing hard.
// @Summary     Upload avatar
// @Tags        profile
// @Accept      multipart/form-data
// @Produce     json
// @Param       avatar formData file true "Image file"
// @Success     200 {object} MessageResponse "Avatar updated"
// @Failure     400 {object} ErrorResponse "Missing or disallowed file"
// @Router      /profile/avatar [post]
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cfg := config.Get()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxUploadBytes)

	file, err := c.FormFile("avatar")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.Redirect(http.StatusSeeOther, "/profile")
			return
		}
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "No file provided"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedAvatarExts[ext] {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "File type not allowed"))
		return
	}

	storedName := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(cfg.UploadDir, storedName)); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	previous, err := h.userService.GetUserByID(principal.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.SetAvatar(principal.ID, "images/"+storedName); err != nil {
		respondWithError(c, err)
		return
	}

	removeStoredAvatar(cfg, previous.ProfileImg)

	c.JSON(http.StatusOK, gin.H{"message": "Avatar updated", "profile_img": "images/" + storedName})
}

// DeleteAvatar resets the caller's profile picture to the default
// @Summary     Delete avatar
// @Tags        profile
// @Produce     json
// @Success     200 {object} MessageResponse "Avatar reset"
// @Router      /profile/avatar [delete]
func (h *ProfileHandler) DeleteAvatar(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(principal.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.ClearAvatar(principal.ID); err != nil {
		respondWithError(c, err)
		return
	}

	removeStoredAvatar(config.Get(), user.ProfileImg)

	c.JSON(http.StatusOK, gin.H{"message": "Avatar reset"})
}

// removeStoredAvatar best-effort deletes an uploaded avatar file. The
// default image is left alone.
func removeStoredAvatar(cfg *config.Config, profileImg string) {
	if profileImg == "" || profileImg == defaultAvatar {
		return
	}
	name := filepath.Base(profileImg)
	if err := os.Remove(filepath.Join(cfg.UploadDir, name)); err != nil && !os.IsNotExist(err) {
		logger.Get().Warnw("failed to remove avatar file", "file", name, "error", err)
	}
}
