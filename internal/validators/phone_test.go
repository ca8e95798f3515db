package validators

import "testing"

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"+91 98765 43210", true},
		{"98765-43210", true},
		{"987654321012", true},
		{"987654321", false},
		{"9876543210123", false},
		{"", false},
		{"abcdefghij", false},
	}

	for _, tc := range cases {
		if got := IsValidPhone(tc.phone); got != tc.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestIsValidPincode(t *testing.T) {
	cases := []struct {
		pincode string
		want    bool
	}{
		{"560001", true},
		{"110001", true},
		{"56001", false},
		{"5600011", false},
		{"56000a", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsValidPincode(tc.pincode); got != tc.want {
			t.Errorf("IsValidPincode(%q) = %v, want %v", tc.pincode, got, tc.want)
		}
	}
}
