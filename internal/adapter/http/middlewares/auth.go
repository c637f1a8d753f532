package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrMissingJWTSecret indicates the signing secret was not configured.
var ErrMissingJWTSecret = errors.New("missing JWT secret")

const (
	// ContextUserID holds the authenticated subject on the gin context.
	ContextUserID = "auth_user_id"
	// ContextUserRole holds the authenticated role on the gin context.
	ContextUserRole = "auth_user_role"
	// ContextUserEmail holds the authenticated email on the gin context.
	ContextUserEmail = "auth_user_email"

	roleAdmin = "admin"
)

// Claims is the token payload issued by the identity provider.
type Claims struct {
	Sub   string `json:"sub"`
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) (*AuthMiddleware, error) {
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return &AuthMiddleware{secret: []byte(secret)}, nil
}

// RequireAuth validates the bearer token and stores the principal on the
// context. Requests without a valid token are rejected with 401.
func (a *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing authorization header"})
			return
		}
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header"})
			return
		}

		claims, err := a.parseValidate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(ContextUserID, claims.Sub)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth. Non-admin principals get 403.
func (a *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if role != roleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin role required"})
			return
		}
		c.Next()
	}
}

func (a *AuthMiddleware) parseValidate(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, jwt.ErrTokenMalformed
	}
	return claims, nil
}

// PrincipalID returns the authenticated subject set by RequireAuth.
func PrincipalID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// IsAdmin reports whether the authenticated principal has the admin role.
func IsAdmin(c *gin.Context) bool {
	return c.GetString(ContextUserRole) == roleAdmin
}
