package payments

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenerateAccessToken returns a random 4-digit numeric token in the range
// 1000-9999. The 9000-value space is not checked for collisions against
// existing payments, matching the one-guest-per-token usage of the site.
func GenerateAccessToken() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+1000, 10), nil
}
