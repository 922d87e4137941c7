package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"society-manager/internal/models"
	"society-manager/internal/store"
	"society-manager/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionKey is the gin context key holding the authenticated session id.
const SessionKey = "sessionID"

// AuthMiddleware validates the JWT and checks that its session is still
// live (not revoked, not expired).
func AuthMiddleware(jwtSecret string, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) Header: Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// 2) query param ?token=xxx (for downloads where headers are awkward)
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		// 3) cookie
		if tokenStr == "" {
			if cookie, err := c.Cookie("ssm_token"); err == nil {
				tokenStr = cookie
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "session expired, please log in again")
			c.Abort()
			return
		}

		db, err := st.DB()
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "storage unavailable")
			c.Abort()
			return
		}

		var session models.Session
		if err := db.First(&session, "id = ?", claims.SessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.Error(c, http.StatusUnauthorized, util.CodeAuth, "session not found")
			} else {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "load session failed")
			}
			c.Abort()
			return
		}
		if session.Revoked || session.ExpiresAt.Before(time.Now()) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "session expired, please log in again")
			c.Abort()
			return
		}

		c.Set(SessionKey, session.ID)
		c.Next()
	}
}
