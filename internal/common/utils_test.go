package common

import "testing"

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		query  string
		fields []string
		want   bool
	}{
		{"", []string{"Asia/Tokyo"}, true},
		{"  ", nil, true},
		{"tokyo", []string{"Asia/Tokyo"}, true},
		{"KOLKATA", []string{"Asia/Kolkata", "(UTC+05:30) Kolkata"}, true},
		{"+05:30", []string{"Asia/Kolkata", "(UTC+05:30) Kolkata"}, true},
		{"paris", []string{"Asia/Tokyo", "(UTC+09:00) Tokyo"}, false},
		{"x", nil, false},
	}
	for _, tt := range tests {
		if got := MatchesAny(tt.query, tt.fields...); got != tt.want {
			t.Fatalf("MatchesAny(%q, %v) = %v, want %v", tt.query, tt.fields, got, tt.want)
		}
	}
}
