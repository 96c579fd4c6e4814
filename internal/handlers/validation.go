package handlers

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/stwalsh4118/cadastre/internal/cadnum"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the custom binding tags used by request structs to
// gin's validator engine. It is safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = v.RegisterValidation("cadnum", validateCadastralNumber)
	})
	return registerErr
}

// validateCadastralNumber implements the "cadnum" tag.
func validateCadastralNumber(fl validator.FieldLevel) bool {
	return cadnum.Valid(fl.Field().String())
}
