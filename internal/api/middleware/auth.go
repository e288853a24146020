package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yash6314/invigilationMailService/pkg/jwt"
	"github.com/yash6314/invigilationMailService/pkg/redis"
	"github.com/yash6314/invigilationMailService/pkg/response"
)

// JWTAuth validates the Authorization: Bearer token and rejects
// blacklisted JTIs. rdb may be nil; revocation checks are then skipped.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token invalid or expired")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set("username", claims.Username)
		c.Set("jti", claims.ID)
		c.Set("token_exp", claims.ExpiresAt.Unix())

		c.Next()
	}
}
