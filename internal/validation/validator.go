package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with the custom rules registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// item type must be one of the two catalog kinds
	_ = v.RegisterValidation("itemtype", func(fl validatorv10.FieldLevel) bool {
		s := fl.Field().String()
		return s == "Product" || s == "Offer"
	})

	return v
}
