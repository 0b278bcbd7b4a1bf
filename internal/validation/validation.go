package validation

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error body for every failure in the API:
// a single error message, matching the response contract of the
// service.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BindAndValidateJSON binds the request body into dst and rejects the
// request with a 400 when the body is malformed or a field constraint
// fails. Returns false when the request has been answered.
func BindAndValidateJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
				Error: formatValidationErrors(verrs),
			})
			return false
		}

		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Error: "cuerpo de la petición inválido",
		})
		return false
	}

	return true
}

func formatValidationErrors(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, buildMessage(toJSONFieldName(fe.Field()), fe))
	}
	return strings.Join(msgs, "; ")
}

func toJSONFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func buildMessage(field string, fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return field + " is required"
	}

	return field + " is invalid (" + fe.Tag() + ")"
}
