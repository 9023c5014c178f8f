package confirmation

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// paymentIDBytes of entropy produce a 10-character id, short enough to read
// aloud and copy from a receipt. Uniqueness is best-effort: collisions are
// negligible at this roster's volume, and callers needing a hard guarantee
// add a unique constraint in the store schema.
const paymentIDBytes = 5

// NewPaymentID generates a fresh human-presentable payment identifier,
// unrelated to any petitioner data.
func NewPaymentID() (string, error) {
	buf := make([]byte, paymentIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate payment id: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
