package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

// Principal is the authenticated caller extracted from the bearer token.
// Admin comes from a signed claim, never from the request body.
type Principal struct {
	ID    string
	Name  string
	Email string
	Admin bool
}

type authClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
	jwt.RegisteredClaims
}

func (h *Handler) authenticated(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		newErrorResponse(c, http.StatusUnauthorized, "authorization header required")
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		newErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
		return
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		newErrorResponse(c, http.StatusUnauthorized, "invalid token")
		return
	}

	c.Set(principalKey, Principal{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
		Admin: claims.Admin,
	})
	c.Next()
}

func (h *Handler) adminOnly(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok || !p.Admin {
		newErrorResponse(c, http.StatusForbidden, "admin access required")
		return
	}
	c.Next()
}

func principalFrom(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
