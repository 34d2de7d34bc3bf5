package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error Message for Validation Errors
type ErrMsg struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func getErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "should be a valid email address"
	case "url":
		return "should be a valid URL"
	case "oneof":
		return "should be one of: " + fe.Param()
	case "min":
		return "should have min value of " + fe.Param()
	case "max":
		return "should have max value of " + fe.Param()
	case "rfc3339":
		return "field should be an RFC3339 date"
	}

	return "Unknown error"
}

// abortWithBindError turns binding failures into the field-level error
// payload, or a generic 400 when the failure wasn't a validation error.
func abortWithBindError(c *gin.Context, err error, logger *slog.Logger) {
	logger.Error("validation error", slog.String("error", err.Error()))

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		output := make([]ErrMsg, len(ve))
		for i, fe := range ve {
			output[i] = ErrMsg{
				Message: getErrorMsg(fe),
				Field:   fe.Field(),
			}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"errors": output,
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error": "invalid request payload",
	})
}

// idParam parses the numeric path id, answering 400 itself on garbage input.
func idParam(c *gin.Context) (int, bool) {
	raw, _ := c.Params.Get("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"errors": []ErrMsg{{Field: "id", Message: "should be a positive integer"}},
		})
		return 0, false
	}
	return id, true
}

func ownerID(c *gin.Context) int {
	return c.MustGet("userId").(int)
}
