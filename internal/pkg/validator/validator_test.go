package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-06-01"); !ok {
		t.Error(`IsValidDate("2024-06-01") = false, want true`)
	}
	for _, bad := range []string{"2024-13-01", "01-06-2024", "2024/06/01", "", "tomorrow"} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	if _, ok := IsValidTimeOfDay("09:00:00"); !ok {
		t.Error(`IsValidTimeOfDay("09:00:00") = false, want true`)
	}
	for _, bad := range []string{"9:00", "25:00:00", "09:61:00", ""} {
		if _, ok := IsValidTimeOfDay(bad); ok {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", bad)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Annual", "Sick", "Family"}
	if !IsInSlice("Sick", slice) {
		t.Error(`IsInSlice("Sick") = false, want true`)
	}
	if IsInSlice("Other", slice) {
		t.Error(`IsInSlice("Other") = true, want false`)
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "reason", Message: "reason is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["email"] != "email is required" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "email: email is required; reason: reason is required" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
