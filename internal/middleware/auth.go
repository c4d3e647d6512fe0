package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/staffdesk-io/staffdesk/internal/config"
	"github.com/staffdesk-io/staffdesk/internal/modules/serializer"
)

// SessionAuth gates the API on "is there a valid session". A request passes
// with either the root API bearer token or a bearer token for which the
// external auth service has written a session key into redis. The auth flow
// itself (sign in/up, token issuance) lives outside this service.
func SessionAuth(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		if raw == cfg.Root.ApiBearerToken {
			c.Next()
			return
		}

		n, err := rdb.Exists(c.Request.Context(), cfg.Root.SessionKeyPrefix+raw).Result()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "session lookup failed", err))
			return
		}
		if n == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		c.Next()
	}
}
