package validation

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
	"github.com/rocky2015aaa/bookshop/internal/model"
)

// ErrorResponse is the uniform error body: one human-readable detail line.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// BindAndValidate binds the JSON body into dst and, when dst implements
// model.Validatable, runs its policy self-check. Binding failures abort
// with 400 before the error taxonomy applies; policy failures abort with
// the mapped status (422). Returns true when dst is ready to use.
func BindAndValidate(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		detail := "invalid request body: " + err.Error()
		if verrs, ok := err.(validator.ValidationErrors); ok {
			detail = formatValidationErrors(verrs)
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: detail})
		return false
	}

	if v, ok := dst.(model.Validatable); ok {
		if err := v.Validate(); err != nil {
			c.AbortWithStatusJSON(apperr.Status(err), ErrorResponse{Detail: err.Error()})
			return false
		}
	}

	return true
}

func formatValidationErrors(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, buildMessage(toJSONFieldName(fe.Field()), fe))
	}
	return strings.Join(parts, "; ")
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
