package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fabclean/laundry-api/internal/httperr"
	"github.com/fabclean/laundry-api/internal/models"
	"github.com/fabclean/laundry-api/internal/session"
)

type AdminAuthHandler struct {
	db       *gorm.DB
	sessions *session.Store
}

func NewAdminAuthHandler(db *gorm.DB, sessions *session.Store) *AdminAuthHandler {
	return &AdminAuthHandler{db: db, sessions: sessions}
}

// --------- Requests ---------

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Missing fields")
		return
	}

	// the legacy admin UI posts "username", newer clients post "email"
	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = strings.TrimSpace(req.Username)
	}
	if email == "" {
		httperr.BadRequest(c, "missing_fields", "Missing fields")
		return
	}

	var admin models.AdminUser
	if err := h.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
			return
		}
		httperr.Internal(c, "internal_error", "Internal error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), admin.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_create_session", "Could not create session")
		return
	}

	c.SetCookie("admin_session", token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Admin login successful",
		"token":   token,
		"admin":   admin,
	})
}

func (h *AdminAuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if parts := strings.SplitN(token, " ", 2); len(parts) == 2 {
		token = parts[1]
	}
	if token == "" {
		if cookie, err := c.Cookie("admin_session"); err == nil {
			token = cookie
		}
	}

	if token != "" {
		if err := h.sessions.Revoke(c.Request.Context(), token); err != nil {
			httperr.Internal(c, "failed_to_revoke_session", "Could not revoke session")
			return
		}
	}

	c.SetCookie("admin_session", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Admin logged out"})
}
