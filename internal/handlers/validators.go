package handlers

import (
	"reflect"
	"sync"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs:
//   - iso4217: a currency code known to the currency catalogue
//   - posdecimal: a decimal strictly greater than zero
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// Validate decimals through their string form so field tags apply to them.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})
		_ = v.RegisterValidation("iso4217", func(fl validator.FieldLevel) bool {
			return domain.IsKnownCurrency(fl.Field().String())
		})
		_ = v.RegisterValidation("posdecimal", func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			return err == nil && d.IsPositive()
		})
	})
}
