package middleware

import (
	"reflect"
	"strings"

	"github.com/estoque/backend/internal/domain/ledger"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator configures gin's validator with the ledger's custom tags.
// Call once before routes are registered.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Error messages use JSON field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// ledgerdate validates a calendar day in YYYY-MM-DD form
	_ = v.RegisterValidation("ledgerdate", func(fl validator.FieldLevel) bool {
		return ledger.ValidateDate(fl.Field().String()) == nil
	})
}
