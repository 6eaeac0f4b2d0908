package handlers

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	figiPattern     = regexp.MustCompile(`^[A-Z0-9]{12}$`)
	registerValOnce sync.Once
)

// validateFigi accepts 12 character upper case alphanumeric identifiers.
func validateFigi(fl validator.FieldLevel) bool {
	return figiPattern.MatchString(fl.Field().String())
}

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() {
	registerValOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("figi", validateFigi)
		}
	})
}
