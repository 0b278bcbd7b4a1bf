package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventario/internal/validation"
)

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Error: message,
	})
}

// writeStoreError answers a request whose store call failed for a
// reason other than "not found". The store being down mid-request is
// a 503, not a 500: the request was fine, the upstream was not.
func writeStoreError(c *gin.Context) {
	writeError(c, http.StatusServiceUnavailable, "la base de datos no está disponible")
}
