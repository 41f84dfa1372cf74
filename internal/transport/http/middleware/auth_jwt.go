package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/core/auth"
	resp "github.com/terrabrand/agency-website-with-cms-vps/internal/transport/http/response"
)

// 放入 gin.Context 的登录态 key
const (
	KeyUserID   = "userId"
	KeyUserName = "userName"
	KeyRole     = "role"
)

func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeForbidden, "forbidden"))
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyUserName, claims.Name)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}
