// Package validator provides rule based validation with translatable
// error messages.
//
//	err := validator.Apply(
//	    validator.RequiredString("email", form.Email),
//	    validator.Email("email", form.Email),
//	    validator.MaxLenString("postalCode", form.PostalCode, 5),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//	    ve.Translate(translator.TranslateMessage)
//	}
//
// Every error carries a TranslationKey ("validation.required", ...) and
// TranslationValues that always include "field".
package validator
