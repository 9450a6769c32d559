package handlers

import (
	"errors"
	"reflect"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// decimalNonNegative accepts decimal fields that are zero or positive. The
// decimal custom type func hands the value over as its string form.
func decimalNonNegative(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

// decimalMaxScale accepts decimals with at most param fractional digits, so
// decimal_scale=4 rejects 0.00005.
func decimalMaxScale(fl validator.FieldLevel) bool {
	scale, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		return false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.Equal(d.Truncate(int32(scale)))
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// RegisterValidators installs the custom binding tags on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	var err error
	registerValidatorsOnce.Do(func() {
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		if err = v.RegisterValidation("decimal_nonneg", decimalNonNegative); err != nil {
			return
		}
		err = v.RegisterValidation("decimal_scale", decimalMaxScale)
	})
	return err
}
