package util

import (
	"learnsphere_backend/internal/model"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID    uint           `json:"user_id"`
	Role      model.UserRole `json:"role"`
	Email     string         `json:"email"`
	TokenType string         `json:"token_type"`
	jwt.RegisteredClaims
}

func generateToken(user *model.User, secret, tokenType string, expiration time.Duration) (string, error) {
	claims := &Claims{
		UserID:    user.ID,
		Role:      user.Role(),
		Email:     user.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateAccessJWT 生成访问令牌
func GenerateAccessJWT(user *model.User, secret string, expiration time.Duration) (string, error) {
	return generateToken(user, secret, TokenTypeAccess, expiration)
}

// GenerateRefreshJWT 生成刷新令牌
func GenerateRefreshJWT(user *model.User, secret string, expiration time.Duration) (string, error) {
	return generateToken(user, secret, TokenTypeRefresh, expiration)
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
