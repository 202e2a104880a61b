package domain

import "fmt"

// Cielo payment status codes.
const (
	StatusNotFinalized = 0
	StatusAuthorized   = 1
	StatusCaptured     = 2
	StatusDenied       = 3
	StatusVoided       = 10
	StatusRefunded     = 11
	StatusPending      = 12
	StatusAborted      = 13
	StatusScheduled    = 20
)

var statusText = map[int]string{
	StatusNotFinalized: "not finalized",
	StatusAuthorized:   "authorized",
	StatusCaptured:     "captured",
	StatusDenied:       "denied",
	StatusVoided:       "voided",
	StatusRefunded:     "refunded",
	StatusPending:      "pending",
	StatusAborted:      "aborted",
	StatusScheduled:    "scheduled",
}

// acquirer return codes seen in production and in the Cielo sandbox
var returnCodeText = map[string]string{
	"00": "Transaction approved (authorized).",
	"0":  "Transaction approved (authorized).",
	"4":  "Transaction not authorized by the issuer.",
	"5":  "Transaction not authorized. Check with the issuing bank.",
	"05": "Transaction not authorized. Check with the issuing bank.",
	"6":  "Transaction approved (authorized).",
	"57": "Card does not allow this type of transaction.",
	"70": "Problems with the credit card.",
	"77": "Card cancelled.",
	"78": "Card blocked.",
	"82": "Invalid or unrecognized card.",
	"83": "Invalid CVV.",
	"91": "Issuer unavailable. Try again.",
	"99": "Operation timed out at the acquirer.",
}

// StatusText translates a gateway status code. A nil code means the gateway
// did not report one.
func StatusText(code *int) string {
	if code == nil {
		return "Unknown (not informed)"
	}
	if text, ok := statusText[*code]; ok {
		return text
	}
	return fmt.Sprintf("Unknown (%d)", *code)
}

// ReturnCodeText translates an acquirer return code. It never fails.
func ReturnCodeText(code string) string {
	if code == "" {
		return "Return code not informed; contact the acquirer for details."
	}
	if text, ok := returnCodeText[code]; ok {
		return text
	}
	return fmt.Sprintf("Return code %s; contact the acquirer for details.", code)
}
