package handlers

import (
	"encoding/hex"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs custom binding validators used by the request
// structs in this package. Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("hexid", validHexID)
}

// validHexID accepts non-empty lowercase hex strings, the format used for
// challenge session ids.
func validHexID(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
