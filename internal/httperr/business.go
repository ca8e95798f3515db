package httperr

import "errors"

// BusinessError is a domain rule violation identified by a snake_case code
// (material_not_found, invalid_unit, invalid_price, ...). Use cases return
// it; handlers map each code to an HTTP status in their error switch.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err carries the given code, unwrapping as
// needed.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
