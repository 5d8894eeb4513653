package validator

import "testing"

func TestName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"John", true},
		{"John Doe", true},
		{"Анна", true},
		{"Анна Мария", true},
		{"John123", false},
		{"John-Doe", false},
		{"", false},
		{"John!", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := Name(tc.in); got != tc.want {
				t.Errorf("Name(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSurname(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Doe", true},
		{"John Doe", true},
		{"Иванова", true},
		{"Doe123", false},
		{"Doe_White", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := Surname(tc.in); got != tc.want {
				t.Errorf("Surname(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"+12345678901", true},
		{"12345678901", true},
		{"1234567890", true},
		{"+1234567890", false},
		{"+123456789012", false},
		{"123456789", false},
		{"ABC4567890", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := Phone(tc.in); got != tc.want {
				t.Errorf("Phone(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2026-09-01", true},
		{"2026-09-01 trailing junk", true},
		{"2026-09-01T00:00", true},
		{"2026-9-1", false},
		{"01-09-2026", false},
		{"not a date", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := Date(tc.in); got != tc.want {
				t.Errorf("Date(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTime(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"14:30", true},
		{"25:99", true},
		{"9:00", false},
		{"09:00:00", false},
		{"0900", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := Time(tc.in); got != tc.want {
				t.Errorf("Time(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
