package utils

import (
	"strings"
	"testing"
)

func TestValidateCustomerField(t *testing.T) {
	cases := []struct {
		name    string
		field   string
		value   string
		wantErr bool
	}{
		{"bad email", "email", "bad", true},
		{"email missing tld", "email", "a@b", true},
		{"valid email", "email", "a@b.co", false},
		{"empty email", "email", "", true},
		{"short first name", "firstName", "A", true},
		{"valid first name", "firstName", "Al", false},
		{"long last name", "lastName", strings.Repeat("x", 51), true},
		{"valid business name", "businessName", "Glow Studio", false},
		{"short business name", "businessName", "G", true},
		{"unknown business type", "businessType", "bakery", true},
		{"valid business type", "businessType", "salon", false},
		{"short phone", "phoneNumber", "123", true},
		{"formatted phone strips to ten digits", "phoneNumber", "123-456-7890", false},
		{"phone with letters only", "whatsappNumber", "call me", true},
		{"address at limit", "address", strings.Repeat("a", 200), false},
		{"address over limit", "address", strings.Repeat("a", 201), true},
		{"chat message over limit", "directChatMessage", strings.Repeat("m", 501), true},
		{"notes over limit", "notes", strings.Repeat("n", 1001), true},
		{"unknown field passes", "middleName", "whatever", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateCustomerField(tc.field, tc.value)
			if tc.wantErr && got == "" {
				t.Fatalf("expected an error for %s=%q, got none", tc.field, tc.value)
			}
			if !tc.wantErr && got != "" {
				t.Fatalf("expected no error for %s=%q, got %q", tc.field, tc.value, got)
			}
		})
	}
}

func TestValidateCustomerNumber(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	cases := []struct {
		name    string
		field   string
		value   *float64
		wantErr bool
	}{
		{"rating above max", "rating", f(6), true},
		{"rating below min", "rating", f(-1), true},
		{"fractional rating", "rating", f(3.3), false},
		{"rating at bounds", "rating", f(5), false},
		{"negative last payment", "lastPayment", f(-0.01), true},
		{"zero last payment", "lastPayment", f(0), false},
		{"omitted value", "rating", nil, false},
		{"unknown field passes", "discount", f(-5), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateCustomerNumber(tc.field, tc.value)
			if tc.wantErr && got == "" {
				t.Fatalf("expected an error for %s, got none", tc.field)
			}
			if !tc.wantErr && got != "" {
				t.Fatalf("expected no error for %s, got %q", tc.field, got)
			}
		})
	}
}

func validFormValues() map[string]string {
	return map[string]string{
		"email":             "owner@glow.co",
		"firstName":         "Maya",
		"lastName":          "Lindqvist",
		"phoneNumber":       "+1 (212) 555-0147",
		"whatsappNumber":    "12125550147",
		"businessName":      "Glow Studio",
		"businessType":      "spa",
		"address":           "14 Canal St",
		"directChatMessage": "Hi, your appointment is confirmed.",
		"notes":             "Prefers morning slots.",
	}
}

func TestValidateCustomerForm(t *testing.T) {
	t.Run("valid form returns empty map", func(t *testing.T) {
		errs := ValidateCustomerForm(validFormValues(), nil)
		if len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("missing required fields all reported", func(t *testing.T) {
		values := validFormValues()
		delete(values, "email")
		values["firstName"] = ""
		errs := ValidateCustomerForm(values, nil)
		if _, ok := errs["email"]; !ok {
			t.Fatalf("expected an error for absent email, got %v", errs)
		}
		if _, ok := errs["firstName"]; !ok {
			t.Fatalf("expected an error for empty firstName, got %v", errs)
		}
		if len(errs) != 2 {
			t.Fatalf("expected exactly 2 errors, got %v", errs)
		}
	})

	t.Run("optional numeric still range checked", func(t *testing.T) {
		bad := 7.0
		errs := ValidateCustomerForm(validFormValues(), map[string]*float64{"rating": &bad})
		if _, ok := errs["rating"]; !ok {
			t.Fatalf("expected a rating error, got %v", errs)
		}
	})

	t.Run("nil numerics pass", func(t *testing.T) {
		errs := ValidateCustomerForm(validFormValues(), map[string]*float64{
			"rating":      nil,
			"lastPayment": nil,
		})
		if len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})
}
