package handler

import (
	"net/http"
	"time"

	"society-manager/internal/middleware"
	"society-manager/internal/models"
	"society-manager/internal/service"
	"society-manager/internal/store"
	"society-manager/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler serves login/logout for the single admin identity.
type AuthHandler struct {
	Store      *store.Store
	Credential *service.Credential
	JWTSecret  string
	TokenTTL   time.Duration
}

func NewAuthHandler(st *store.Store, cred *service.Credential, jwtSecret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		Store:      st,
		Credential: cred,
		JWTSecret:  jwtSecret,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the credential and issues a session-bound token. Wrong user
// and wrong password get the same message; no lockout, no rate limiting.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	ok, err := h.Credential.Verify(req.Username, req.Password)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "verify credential failed")
		return
	}
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "wrong username or password")
		return
	}

	db, err := h.Store.DB()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "storage unavailable")
		return
	}

	session := models.Session{
		ID:        uuid.New().String(),
		ExpiresAt: time.Now().Add(h.TokenTTL),
	}
	if err := db.Create(&session).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create session failed")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, session.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "generate token failed")
		return
	}

	util.Success(c, util.Response{
		"token": token,
		"user": gin.H{
			"username": service.AdminUsername,
		},
	})
}

// Logout revokes the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)
	if sessionID == "" {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	db, err := h.Store.DB()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "storage unavailable")
		return
	}

	if err := db.Model(&models.Session{}).
		Where("id = ?", sessionID).
		Update("revoked", true).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "revoke session failed")
		return
	}

	util.Success(c, util.Response{"message": "logged out"})
}

// GetMe reports the fixed admin identity for an authenticated session.
func GetMe(c *gin.Context) {
	util.Success(c, util.Response{
		"user": gin.H{
			"username": service.AdminUsername,
		},
	})
}
