package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/japb1998/outreach-crm/internal/controller"
)

func getUserEmailFromToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	tokenSlice := strings.Split(tokenString, " ")
	if len(tokenSlice) < 2 {
		return "", fmt.Errorf("Bearer token has incorrect format")
	}
	jwt.ParseWithClaims(tokenSlice[1], claims, func(t *jwt.Token) (interface{}, error) {
		return nil, nil
	})
	if email, ok := claims["email"]; !ok {

		return "", errors.New("error while getting user email from token")

	} else if emailString, ok := email.(string); !ok {

		return "", errors.New("email is not a string")
	} else {
		return emailString, nil
	}
}

// currentUserMiddleWare resolves the acting account. Requests without a
// usable token act as the demo account instead of being rejected.
func currentUserMiddleWare() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := c.Request.Header["Authorization"]
		if !ok || len(token) == 0 {
			c.Set("userId", controller.DemoUserID())
			c.Next()
			return
		}

		email, err := getUserEmailFromToken(token[0])
		if err != nil {
			routerLogger.Warn("token rejected, acting as demo account", "error", err)
			c.Set("userId", controller.DemoUserID())
			c.Next()
			return
		}

		c.Set("email", email)
		c.Set("userId", controller.ResolveOwnerID(email))
		c.Next()
	}
}

// requestIDMiddleware tags every request, honoring an inbound X-Request-ID.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestId", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
