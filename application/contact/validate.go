package contact

import (
	"github.com/muhammadheryan/contact-manager/model"
	validatorx "github.com/muhammadheryan/contact-manager/utils/validator"
)

// Field/tag messages returned to clients. Keys are json field names.
var contactFieldMessages = map[string]map[string]string{
	"name": {
		"required": "Name is required",
	},
	"email": {
		"required":     "Email is required",
		"email_format": "Please enter a valid email address",
	},
	"phone": {
		"required":     "Phone is required",
		"phone_digits": "Phone number must contain at least 10 digits",
	},
}

// validateRequest returns a field→message map, empty when the request
// is valid. The caller trims name beforehand so "   " fails required.
func validateRequest(req *model.ContactRequest) map[string]string {
	err := validatorx.ValidateStruct(req)
	if err == nil {
		return nil
	}
	return validatorx.FieldErrors(err, contactFieldMessages)
}
