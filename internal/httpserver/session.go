package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "cart_session"
	sessionCtxKey = "cartSessionID"
	sessionMaxAge = 30 * 24 * time.Hour
)

// sessionMiddleware gives every browser an opaque cart identity. The cookie
// value is the partition key for cart rows and orders; handlers read it with
// sessionID and pass it to services explicitly.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, int(sessionMaxAge.Seconds()), "/", "", false, true)
		}
		c.Set(sessionCtxKey, sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	v, _ := c.Get(sessionCtxKey)
	sid, _ := v.(string)
	return sid
}
