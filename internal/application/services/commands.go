package services

// PlanPaymentCommand is a plan checkout as submitted by the customer.
type PlanPaymentCommand struct {
	PlanID       string
	Installments int

	Phone      string
	Email      string
	PostalCode string
	CPF        string

	Holder     string
	Brand      string
	CardNumber string
	Expiration string
	CVV        string
}

// DonationCommand only carries card data; donations skip personal-data checks.
type DonationCommand struct {
	Holder     string
	Brand      string
	CardNumber string
	Expiration string
	CVV        string
}

type CaptureCommand struct {
	PaymentID string
	Amount    int64
}

type VoidCommand struct {
	PaymentID string
	Amount    int64
}
