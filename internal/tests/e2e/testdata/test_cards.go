package testdata

// TestCard is a card the fake gateway answers to by its last digit, following
// the rules of the acquirer's sandbox. All numbers pass the Luhn check.
type TestCard struct {
	CardNumber  string
	CVV         string
	Brand       string
	Expiration  string
	Description string
}

var (
	AuthorizedCard = TestCard{
		CardNumber:  "4024007153030001",
		CVV:         "123",
		Brand:       "Visa",
		Expiration:  "12/2030",
		Description: "Authorized (ends in 1)",
	}

	NotAuthorizedCard = TestCard{
		CardNumber:  "4024007153020002",
		CVV:         "123",
		Brand:       "Visa",
		Expiration:  "12/2030",
		Description: "Not authorized, return code 05 (ends in 2)",
	}

	BlockedCard = TestCard{
		CardNumber:  "4024007153090005",
		CVV:         "123",
		Brand:       "Visa",
		Expiration:  "12/2030",
		Description: "Blocked card, return code 78 (ends in 5)",
	}

	MasterCard = TestCard{
		CardNumber:  "5555555555554444",
		CVV:         "321",
		Brand:       "Master",
		Expiration:  "09/2031",
		Description: "Authorized (ends in 4)",
	}

	LuhnFailureCard = TestCard{
		CardNumber:  "4024007153030002",
		CVV:         "123",
		Brand:       "Visa",
		Expiration:  "12/2030",
		Description: "Rejected before reaching the gateway",
	}
)
