// Package validator provides small composable validation rules.
//
// A Rule pairs a check with the error reported when it fails. Apply runs a set of
// rules and returns ValidationErrors listing every failure, so callers can report
// all problems in one go:
//
//	err := validator.Apply(
//	    validator.RequiredString("name", p.Name),
//	    validator.ValidEmail("email", p.Email),
//	)
//	if validator.IsValidationError(err) { ... }
package validator
