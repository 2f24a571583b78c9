package common

import "testing"

func TestInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Jean Kabila", "JK"},
		{"Alice", "A"},
		{"Marie Claire Tshisekedi", "MC"},
		{"", "NA"},
		{"   ", "NA"},
	}
	for _, c := range cases {
		if got := Initials(c.name); got != c.want {
			t.Errorf("Initials(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestCityCode(t *testing.T) {
	cases := []struct {
		city string
		want string
	}{
		{"Kinshasa", "KIN"},
		{"Goma", "GOM"},
		{"Ub", "UB"},
	}
	for _, c := range cases {
		if got := CityCode(c.city); got != c.want {
			t.Errorf("CityCode(%q) = %q, want %q", c.city, got, c.want)
		}
	}
}
