package serverutils

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware guards tenant routes. It accepts a Bearer header or the
// "token" cookie and stores the subject user id in ctx.Locals("user_id").
func JwtMiddleware(ctx *fiber.Ctx) error {
	tokenString := ""

	authHeader := ctx.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}
	if tokenString == "" {
		tokenString = ctx.Cookies("token")
	}
	if tokenString == "" {
		return NewUnauthorizedError("missing authentication token")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return NewUnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return NewUnauthorizedError("invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return NewUnauthorizedError("invalid token claims")
	}

	ctx.Locals("user_id", userID)
	return ctx.Next()
}
