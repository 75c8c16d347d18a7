package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	numberPrefix   = "ORD"
	randPartLength = 4
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewOrderNumber produces a human-readable order number such as
// ORD-MB3K2J9A-X9K2. Uniqueness is probabilistic; the orders table
// constraint on order_number is the backstop.
func NewOrderNumber() string {
	timePart := strconv.FormatInt(time.Now().UnixMilli(), 36)

	var b strings.Builder
	for i := 0; i < randPartLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(36))
		if err != nil {
			// fallback: time-based entropy
			n = big.NewInt(time.Now().UnixNano() % 36)
		}
		b.WriteByte(base36Alphabet[n.Int64()])
	}

	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", numberPrefix, timePart, b.String()))
}
