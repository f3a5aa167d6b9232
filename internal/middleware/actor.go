package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/repmhq/repm-backend/internal/pkg/logger"
	"github.com/repmhq/repm-backend/internal/requestdata"
)

type ActorMiddleware struct {
	log          *logger.Logger
	jwtSecretKey string
}

func NewActorMiddleware(log *logger.Logger, jwtSecretKey string) *ActorMiddleware {
	middlewareLogger := log.With("Middleware", "ActorMiddleware")
	return &ActorMiddleware{log: middlewareLogger, jwtSecretKey: jwtSecretKey}
}

// Identify resolves the acting user from a bearer token and stores it in the
// request context for audit stamping. Requests without a token (or with one
// that fails to parse) proceed with no actor set, so writes fall back to the
// unknown-actor sentinel.
func (am *ActorMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}
		actorID, err := am.parseActorID(tokenString)
		if err != nil {
			am.log.Debug("Could not resolve actor from token", "error", err)
			c.Next()
			return
		}
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{ActorID: actorID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (am *ActorMiddleware) parseActorID(tokenString string) (uuid.UUID, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(am.jwtSecretKey), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	claims, ok := parsedToken.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsedToken.Valid {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	return uuid.Parse(claims.Subject)
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
