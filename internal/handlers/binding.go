package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindErrorMessage turns a gin binding error into a client-facing message,
// listing the failed fields when the error carries field-level detail.
func bindErrorMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		parts := make([]string, len(fieldErrs))
		for i, fe := range fieldErrs {
			parts[i] = fmt.Sprintf("field %s failed on %q", fe.Field(), fe.Tag())
		}
		return "Invalid request: " + strings.Join(parts, "; ")
	}
	return "Invalid request format: " + err.Error()
}
