package http

import (
	"strings"
	"testing"
	"time"
)

func TestValidateRequest(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     TarotRequest
		wantErr bool
	}{
		{"valid", TarotRequest{Name: "Lan", DOB: "1995-06-01"}, false},
		{"valid with diacritics", TarotRequest{Name: "Nguyễn Văn An", DOB: "1990-12-25"}, false},
		{"age exactly 13", TarotRequest{Name: "Minh", DOB: "2011-05-01"}, false},
		{"missing name", TarotRequest{Name: "", DOB: "1995-06-01"}, true},
		{"missing dob", TarotRequest{Name: "Lan", DOB: ""}, true},
		{"whitespace-only name", TarotRequest{Name: "   ", DOB: "1995-06-01"}, true},
		{"name too short", TarotRequest{Name: "A", DOB: "1995-06-01"}, true},
		{"name too long", TarotRequest{Name: strings.Repeat("a", 51), DOB: "1995-06-01"}, true},
		{"name with digits", TarotRequest{Name: "Lan9", DOB: "1995-06-01"}, true},
		{"dob wrong format", TarotRequest{Name: "Lan", DOB: "01/06/1995"}, true},
		{"dob not a date", TarotRequest{Name: "Lan", DOB: "1995-13-45"}, true},
		{"dob in the future", TarotRequest{Name: "Lan", DOB: "2030-01-01"}, true},
		{"too young", TarotRequest{Name: "Lan", DOB: "2015-01-01"}, true},
		{"too old", TarotRequest{Name: "Lan", DOB: "1900-01-01"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req, now)
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error for %+v", tt.req)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for %+v: %v", tt.req, err)
			}
		})
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		dob  string
		want int
	}{
		{"1995-06-01", 28}, // birthday not yet reached this year
		{"1995-05-01", 29}, // birthday today
		{"1995-04-30", 29}, // birthday passed
	}

	for _, tt := range tests {
		dob, err := time.Parse("2006-01-02", tt.dob)
		if err != nil {
			t.Fatalf("parse %s: %v", tt.dob, err)
		}
		if got := age(dob, now); got != tt.want {
			t.Errorf("age(%s) = %d, want %d", tt.dob, got, tt.want)
		}
	}
}
