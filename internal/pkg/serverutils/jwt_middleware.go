package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const userIdLocal = "user_id"

var ErrMissingUser = errors.New("no authenticated user on request")

// NewJwtMiddleware verifies an HS256 bearer token and stores its user_id claim on the request.
// With an empty secret every request is rejected.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if secret == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Token verification is not configured"))
		}

		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid claims"))
		}

		rawUserId, _ := claims["user_id"].(string)
		userId, err := uuid.Parse(rawUserId)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid user"))
		}

		ctx.Locals(userIdLocal, userId)
		return ctx.Next()
	}
}

// UserId returns the user resolved by the JWT middleware.
func UserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userId, ok := ctx.Locals(userIdLocal).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrMissingUser
	}
	return userId, nil
}
