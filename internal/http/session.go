package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionKey = "session_id"

// sessionCookieMaxAge es un año en segundos.
const sessionCookieMaxAge = 365 * 24 * 60 * 60

// sessionMiddleware asegura que cada visitante tenga un id de sesion
// estable; el tema se guarda bajo ese id.
func sessionMiddleware(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || !validSessionID(id) {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, id, sessionCookieMaxAge, "/", "", secureRequest(c), true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

// secureRequest reporta si la peticion llego por HTTPS, directo o via proxy.
func secureRequest(c *gin.Context) bool {
	return c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https")
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
