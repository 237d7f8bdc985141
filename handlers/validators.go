package handlers

import (
	"errors"

	"meal-marketplace-api/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs custom binding validators. "orderstatus"
// restricts a field to the five legal order status values.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
		status := models.OrderStatus(fl.Field().String())
		for _, valid := range models.OrderStatuses {
			if status == valid {
				return true
			}
		}
		return false
	})
}
