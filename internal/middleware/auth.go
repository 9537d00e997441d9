package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"smart-todo/internal/model"
	"smart-todo/pkg/response"
)

const scopeContextKey = "auth_scope"

// Auth validates the Bearer token and stores the caller Scope on the context.
// Token issuance lives outside this service; only HS256 validation happens here.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		sc, err := m.parseToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeContextKey, sc)
		c.Next()
	}
}

func (m Middleware) parseToken(tokenString string) (model.Scope, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return model.Scope{}, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.Scope{}, jwt.ErrTokenInvalidClaims
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return model.Scope{}, jwt.ErrTokenInvalidClaims
	}

	username, _ := claims["username"].(string)

	return model.Scope{
		UserID:   int64(userID),
		Username: username,
	}, nil
}

// ScopeFromContext returns the authenticated Scope set by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeContextKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
