// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("invoice_status", validateInvoiceStatus)
		_ = v.RegisterValidation("todo_status", validateTodoStatus)
		_ = v.RegisterValidation("safe_path", validateSafePath)
	}
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateInvoiceStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "requested", "pending", "paid", "declined":
		return true
	}
	return false
}

func validateTodoStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "doing", "done", "removed":
		return true
	}
	return false
}

// validateSafePath accepts same-origin relative paths only. Anything
// carrying a scheme or authority ("//host", "https://host") is rejected
// so a login "next" target can never become an open redirect.
func validateSafePath(fl validator.FieldLevel) bool {
	return IsSafePath(fl.Field().String())
}

// IsSafePath reports whether p is a same-origin relative path.
func IsSafePath(p string) bool {
	if p == "" || !strings.HasPrefix(p, "/") {
		return false
	}
	if strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return false
	}
	return !strings.ContainsAny(p, "\r\n")
}
