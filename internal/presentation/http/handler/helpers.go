package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sangkips/receipt-api/internal/presentation/http/dto/response"
	"github.com/sangkips/receipt-api/pkg/apperror"
)

// GetSubject extracts the authenticated subject from the Gin context.
// It is empty when authentication is disabled.
func GetSubject(c *gin.Context) string {
	return c.GetString("subject")
}

// bindJSON decodes the request body into obj and writes the error response
// when it fails. Binding rule violations are reported per field with 422,
// malformed JSON with 400.
func bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apperror.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperror.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: fieldMessage(fe),
			})
		}
		response.ValidationError(c, fields)
		return false
	}

	response.BadRequest(c, "Invalid request: "+err.Error())
	return false
}

func fieldMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "is required"
	}
	return "failed the " + fe.Tag() + " rule"
}
