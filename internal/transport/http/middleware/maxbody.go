package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "github.com/terrabrand/agency-website-with-cms-vps/internal/transport/http/response"
)

// MaxBodyBytes 限制请求体大小（附件走 base64，上限要留足）
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "request body too large"))
		}
	}
}
