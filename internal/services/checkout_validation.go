package services

import (
	"regexp"
	"strings"

	"paradise/internal/models"
)

// Loose shape check only. Deliverability is nobody's problem at checkout.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateDetails checks the contact block and, for delivery orders, the
// address. It returns a map keyed by the offending field; an empty map
// means the step may advance.
func ValidateDetails(customer models.CustomerInfo, orderType models.OrderType, address models.DeliveryAddress) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(customer.FirstName) == "" {
		errs["firstName"] = "Required"
	}
	if strings.TrimSpace(customer.LastName) == "" {
		errs["lastName"] = "Required"
	}
	if strings.TrimSpace(customer.Email) == "" {
		errs["email"] = "Required"
	} else if !emailPattern.MatchString(customer.Email) {
		errs["email"] = "Invalid email"
	}
	if strings.TrimSpace(customer.Phone) == "" {
		errs["phone"] = "Required"
	}

	if orderType == models.OrderTypeDelivery {
		if strings.TrimSpace(address.Street) == "" {
			errs["street"] = "Required"
		}
		if strings.TrimSpace(address.City) == "" {
			errs["city"] = "Required"
		}
		if strings.TrimSpace(address.ZipCode) == "" {
			errs["zipCode"] = "Required"
		}
	}

	return errs
}

// expiryPattern is format-only: "13/99" passes. Calendar validity is a known
// gap carried over deliberately.
var expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

// ValidatePayment checks the card fields when paying by card. Cash needs no
// fields. Validation is format-only; there is no Luhn check.
func ValidatePayment(method models.PaymentMethod, card models.CardDetails) map[string]string {
	errs := make(map[string]string)

	if method != models.PaymentMethodCard {
		return errs
	}

	if len(digitsOnly(card.Number)) < 16 {
		errs["cardNumber"] = "Valid card number required"
	}
	if !expiryPattern.MatchString(strings.TrimSpace(card.Expiry)) {
		errs["expiry"] = "MM/YY"
	}
	cvc := digitsOnly(card.CVC)
	if len(cvc) < 3 || cvc != strings.TrimSpace(card.CVC) {
		errs["cvc"] = "Invalid"
	}
	if strings.TrimSpace(card.Name) == "" {
		errs["cardName"] = "Required"
	}

	return errs
}

// FormatCardNumber normalizes a card number into groups of 4 digits,
// dropping anything that is not a digit and capping at 16 digits. Inputs
// with fewer than 4 digits pass through untouched.
func FormatCardNumber(value string) string {
	digits := digitsOnly(value)
	if len(digits) < 4 {
		return value
	}
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var parts []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		parts = append(parts, digits[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry normalizes an expiry into MM/YY, inserting the slash once
// two digits are present.
func FormatExpiry(value string) string {
	digits := digitsOnly(value)
	if len(digits) < 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}
