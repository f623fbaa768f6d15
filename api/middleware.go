package api

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const actorKey = "actor"

type TokenParser interface {
	Parse(token string) (uuid.UUID, bool, error)
}

// AuthMiddleware validates the bearer token and attaches the acting identity
// to the request. The user must still exist; a token for a deleted account is
// rejected.
func AuthMiddleware(tokens TokenParser, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "malformed bearer token")
			return
		}

		userID, admin, err := tokens.Parse(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		if _, err := users.GetByID(c.Request.Context(), userID); err != nil {
			abortUnauthorized(c, "user not found")
			return
		}

		c.Set(actorKey, domain.Actor{ID: userID, Admin: admin})
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
}

func actorFrom(c *gin.Context) domain.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(domain.Actor); ok {
			return actor
		}
	}
	return domain.Actor{}
}
