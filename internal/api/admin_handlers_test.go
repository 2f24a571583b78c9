package api

import (
	"net/http/httptest"
	"testing"
)

func TestParseAdminLimit(t *testing.T) {
	cases := []struct {
		query  string
		want   int
		wantOK bool
	}{
		{"", 200, true},
		{"limit=1", 1, true},
		{"limit=350", 350, true},
		{"limit=500", 500, true},
		{"limit=0", 0, false},
		{"limit=501", 0, false},
		{"limit=-5", 0, false},
		{"limit=abc", 0, false},
	}

	for _, c := range cases {
		r := httptest.NewRequest("GET", "/api/v1/admin/flights?"+c.query, nil)
		got, ok := parseAdminLimit(r)
		if ok != c.wantOK || got != c.want {
			t.Errorf("parseAdminLimit(%q) = (%d, %v), want (%d, %v)", c.query, got, ok, c.want, c.wantOK)
		}
	}
}
