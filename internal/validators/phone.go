package validators

import "unicode"

// IsValidPhone accepts numbers carrying 10 to 12 digits; separators and a
// leading + are ignored, matching how users type them into the forms.
func IsValidPhone(phone string) bool {
	n := digitCount(phone)
	return n >= 10 && n <= 12
}

// IsValidPincode accepts exactly 6 digits (Indian postal code).
func IsValidPincode(pincode string) bool {
	if len(pincode) != 6 {
		return false
	}
	return digitCount(pincode) == 6
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
