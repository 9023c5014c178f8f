package confirmation

// PaymentDetails are the display strings derived from a petitioner's group.
// The mapping is a pure function over a closed set of known groups; an
// unrecognized group falls back to explicit placeholders instead of failing
// the confirmation.
type PaymentDetails struct {
	AmountDisplay string
	Description   string
	CaseNumber    string
}

// DetailsForGroup maps a petitioner group to its payment phase and case.
// The second return value reports whether the group was recognized.
func DetailsForGroup(group int) (PaymentDetails, bool) {
	switch group {
	case 1:
		return PaymentDetails{
			AmountDisplay: "₹1950",
			Description:   "for fourth phase collection",
			CaseNumber:    "WPA3028/2024",
		}, true
	case 2:
		return PaymentDetails{
			AmountDisplay: "₹1950",
			Description:   "for fourth phase collection",
			CaseNumber:    "WPA13054/2024",
		}, true
	case 3:
		return PaymentDetails{
			AmountDisplay: "₹1050",
			Description:   "for third phase collection",
			CaseNumber:    "WPA26400/2024",
		}, true
	default:
		return PaymentDetails{
			AmountDisplay: "Amount not specified",
			Description:   "for registration",
			CaseNumber:    "Case not specified",
		}, false
	}
}
