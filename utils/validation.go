// utils/validation.go
package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// BusinessTypes is the fixed set accepted by the customer edit form.
var BusinessTypes = []string{
	"salon",
	"barbershop",
	"spa",
	"clinic",
	"gym",
	"restaurant",
	"retail",
	"other",
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// FieldRule validates a single non-empty string field. Check returns an
// error message, or "" when the value is acceptable.
type FieldRule struct {
	Required bool
	Check    func(value string) string
}

// NumericRule bounds an optional numeric field.
type NumericRule struct {
	Min    float64
	Max    float64
	HasMax bool
}

func lengthBetween(min, max int) func(string) string {
	return func(v string) string {
		if len(v) < min || len(v) > max {
			return fmt.Sprintf("Must be between %d and %d characters", min, max)
		}
		return ""
	}
}

func maxLength(max int) func(string) string {
	return func(v string) string {
		if len(v) > max {
			return fmt.Sprintf("Must be at most %d characters", max)
		}
		return ""
	}
}

func validEmail(v string) string {
	if !emailPattern.MatchString(v) {
		return "Please enter a valid email address"
	}
	return ""
}

// validPhone strips everything that is not a digit and requires at least
// ten digits to remain.
func validPhone(v string) string {
	digits := nonDigits.ReplaceAllString(v, "")
	if len(digits) < 10 {
		return "Phone number must contain at least 10 digits"
	}
	return ""
}

func oneOf(allowed []string) func(string) string {
	return func(v string) string {
		for _, a := range allowed {
			if v == a {
				return ""
			}
		}
		return "Please select a valid option"
	}
}

// customerStringRules is the declarative rule table for the edit form. Every
// field goes through the same pipeline: required check first, then the
// field-specific format/length check.
var customerStringRules = map[string]FieldRule{
	"email":             {Required: true, Check: validEmail},
	"firstName":         {Required: true, Check: lengthBetween(2, 50)},
	"lastName":          {Required: true, Check: lengthBetween(2, 50)},
	"businessName":      {Required: true, Check: lengthBetween(2, 100)},
	"businessType":      {Required: true, Check: oneOf(BusinessTypes)},
	"phoneNumber":       {Required: true, Check: validPhone},
	"whatsappNumber":    {Required: true, Check: validPhone},
	"address":           {Required: true, Check: maxLength(200)},
	"directChatMessage": {Required: true, Check: maxLength(500)},
	"notes":             {Required: true, Check: maxLength(1000)},
}

var customerNumericRules = map[string]NumericRule{
	"rating":      {Min: 0, Max: 5, HasMax: true},
	"lastPayment": {Min: 0},
	"totalSpent":  {Min: 0},
}

// ValidateCustomerField validates one string field of the edit form and
// returns an error message, or "" when the value is acceptable. Unknown
// field names pass.
func ValidateCustomerField(name, value string) string {
	rule, ok := customerStringRules[name]
	if !ok {
		return ""
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if rule.Required {
			return "This field is required"
		}
		return ""
	}
	return rule.Check(trimmed)
}

// ValidateCustomerNumber range-checks an optional numeric field. A nil value
// means the field was not submitted, which is always acceptable.
func ValidateCustomerNumber(name string, value *float64) string {
	rule, ok := customerNumericRules[name]
	if !ok || value == nil {
		return ""
	}
	if *value < rule.Min {
		return fmt.Sprintf("Must be at least %g", rule.Min)
	}
	if rule.HasMax && *value > rule.Max {
		return fmt.Sprintf("Must be between %g and %g", rule.Min, rule.Max)
	}
	return ""
}

// ValidateCustomerForm runs every rule in the table and returns a map of
// field name to error message. An empty map means the form is valid. String
// fields missing from values count as empty, so required rules still fire.
func ValidateCustomerForm(values map[string]string, numbers map[string]*float64) map[string]string {
	errs := make(map[string]string)
	for name := range customerStringRules {
		if msg := ValidateCustomerField(name, values[name]); msg != "" {
			errs[name] = msg
		}
	}
	for name, value := range numbers {
		if msg := ValidateCustomerNumber(name, value); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}
