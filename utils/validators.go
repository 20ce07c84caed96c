package utils

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("rfc3339", ValidateRFC3339Rule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("rfc3339", ValidateRFC3339Rule)
	}
}

// ValidateRFC3339Rule accepts RFC3339 timestamps, the key format for
// stored snapshots.
func ValidateRFC3339Rule(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339, fl.Field().String())
	return err == nil
}
