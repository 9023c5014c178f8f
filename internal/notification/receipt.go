package notification

import "petitionpay/internal/petitioner"

// Receipt is everything needed to render one confirmation email. It is
// assembled after the confirmation has committed; nothing in here can fail
// the transition that produced it.
type Receipt struct {
	Petitioner  petitioner.Petitioner
	ConfirmedBy string

	// Display strings derived from the petitioner group.
	AmountDisplay string
	Description   string
	CaseNumber    string
}
