package api

import (
	"log"
	"net/http"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a 500 with a generic message; the cause is logged,
// not leaked.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "unexpected error"

	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindInvalidState, domain.KindNoAvailability:
		status = http.StatusBadRequest
		message = err.Error()
	case domain.KindUnauthenticated:
		status = http.StatusUnauthorized
		message = err.Error()
	case domain.KindForbidden:
		status = http.StatusForbidden
		message = err.Error()
	case domain.KindNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case domain.KindConflict:
		status = http.StatusConflict
		message = err.Error()
	default:
		log.Printf("unexpected error: %v", err)
	}

	c.JSON(status, gin.H{"message": message})
}

func writeValidation(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}
