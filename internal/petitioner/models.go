package petitioner

import "time"

// Petitioner is one registrant whose payment status is tracked.
//
// PaymentConfirmed transitions from false to true exactly once; PaymentID,
// ConfirmedBy, and ConfirmedAt are written together with it as one unit, so
// the record is either fully unconfirmed or fully confirmed.
type Petitioner struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Department       string     `json:"department"`
	PetitionerNumber int        `json:"petitioner_number"`
	PetitionerGroup  int        `json:"petitioner_group"`
	PaymentConfirmed bool       `json:"payment_confirmed"`
	PaymentID        *string    `json:"payment_id"`
	ConfirmedBy      *string    `json:"confirmed_by"`
	ConfirmedAt      *time.Time `json:"confirmed_at"`
}
