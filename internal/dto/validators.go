package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
)

// validDenominations accepts a denomination map whose keys are known note
// face values and whose counts are non-negative.
func validDenominations(fl validator.FieldLevel) bool {
	denoms, ok := fl.Field().Interface().(domain.Denominations)
	if !ok {
		return false
	}
	for note, count := range denoms {
		if count < 0 {
			return false
		}
		known := false
		for _, v := range domain.NoteValues {
			if v == note {
				known = true
				break
			}
		}
		if !known {
			return false
		}
	}
	return true
}

// RegisterCustomValidators attaches the project's custom binding validators
// to gin's validator engine. Call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("denoms", validDenominations)
}
