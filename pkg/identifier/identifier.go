package identifier

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// GenerateReceiptNumber produces a 9-character decimal string: the low six
// digits of the current time in milliseconds since epoch, followed by a
// zero-padded 3-digit uniform random value in [0, 999].
//
// Two calls within the same millisecond and matching random draw collide.
// That is accepted: the value is display-only and never used as a key.
func GenerateReceiptNumber() string {
	millis := time.Now().UnixMilli() % 1_000_000
	return fmt.Sprintf("%06d%03d", millis, rand.IntN(1000))
}

// GenerateTransactionID produces a payment transaction identifier. It uses
// the same scheme as receipt numbers but is drawn independently.
func GenerateTransactionID() string {
	return GenerateReceiptNumber()
}
