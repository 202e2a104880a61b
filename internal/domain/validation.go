package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`)

// Expiration is a card expiry at month granularity.
type Expiration struct {
	Month int
	Year  int
}

// String renders the MM/YYYY form the gateway expects.
func (e Expiration) String() string {
	return fmt.Sprintf("%02d/%d", e.Month, e.Year)
}

// ParseExpiration validates a MM/YYYY expiry and rejects cards that expired
// before the month of now.
func ParseExpiration(raw string, now time.Time) (Expiration, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return Expiration{}, newValidationError(FieldExpiration, "invalid expiration date, use MM/YYYY")
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Expiration{}, newValidationError(FieldExpiration, "invalid expiration date, use MM/YYYY")
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Expiration{}, newValidationError(FieldExpiration, "invalid expiration date, use MM/YYYY")
	}

	if month < 1 || month > 12 {
		return Expiration{}, newValidationError(FieldExpiration, "invalid expiration month")
	}

	currentYear, currentMonth := now.Year(), int(now.Month())
	if year < currentYear || (year == currentYear && month < currentMonth) {
		return Expiration{}, newValidationError(FieldExpiration, "card expired")
	}

	return Expiration{Month: month, Year: year}, nil
}

// ValidateCardNumber checks a PAN is 13 to 19 digits and passes the Luhn checksum.
func ValidateCardNumber(number string) error {
	if number == "" || !isDigits(number) {
		return newValidationError(FieldCardNumber, "card number must contain digits only")
	}
	if l := len(number); l < 13 || l > 19 {
		return newValidationError(FieldCardNumber, "invalid card number (13 to 19 digits)")
	}
	if !luhnValid(number) {
		return newValidationError(FieldCardNumber, "invalid card number (Luhn check failed)")
	}
	return nil
}

func ValidateCVV(cvv string) error {
	if cvv == "" || !isDigits(cvv) || (len(cvv) != 3 && len(cvv) != 4) {
		return newValidationError(FieldCVV, "invalid CVV (3 or 4 digits)")
	}
	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return newValidationError(FieldEmail, "email is required")
	}
	if !emailPattern.MatchString(email) {
		return newValidationError(FieldEmail, "invalid email")
	}
	return nil
}

// NormalizePhone returns the digits of a Brazilian phone number (area code + number).
func NormalizePhone(phone string) (string, error) {
	digits := onlyDigits(phone)
	if len(digits) < 10 || len(digits) > 11 {
		return "", newValidationError(FieldPhone, "invalid phone (area code + number)")
	}
	return digits, nil
}

// NormalizePostalCode returns the 8 digits of a CEP.
func NormalizePostalCode(code string) (string, error) {
	digits := onlyDigits(code)
	if len(digits) != 8 {
		return "", newValidationError(FieldPostalCode, "invalid postal code (8 digits)")
	}
	return digits, nil
}

// NormalizeCPF returns the 11 digits of a CPF after checking both verifier digits.
func NormalizeCPF(cpf string) (string, error) {
	digits := onlyDigits(cpf)
	if len(digits) != 11 {
		return "", newValidationError(FieldNationalID, "invalid CPF (11 digits)")
	}
	if strings.Count(digits, digits[:1]) == len(digits) {
		return "", newValidationError(FieldNationalID, "invalid CPF")
	}

	if cpfCheckDigit(digits[:9]) != int(digits[9]-'0') {
		return "", newValidationError(FieldNationalID, "invalid CPF")
	}
	if cpfCheckDigit(digits[:10]) != int(digits[10]-'0') {
		return "", newValidationError(FieldNationalID, "invalid CPF")
	}
	return digits, nil
}

// cpfCheckDigit weights the digits from len+1 down to 2.
func cpfCheckDigit(digits string) int {
	sum := 0
	weight := len(digits) + 1
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weight
		weight--
	}
	r := (sum * 10) % 11
	if r == 10 {
		return 0
	}
	return r
}

func luhnValid(number string) bool {
	sum, double := 0, false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// MaskCardNumber keeps only the last four digits visible.
func MaskCardNumber(number string) string {
	if number == "" {
		return ""
	}
	return "**** **** **** " + lastN(number, 4)
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
