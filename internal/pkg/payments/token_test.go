package payments

import (
	"strconv"
	"testing"
)

func TestGenerateAccessTokenRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		token, err := GenerateAccessToken()
		if err != nil {
			t.Fatalf("GenerateAccessToken() error: %v", err)
		}
		if len(token) != 4 {
			t.Fatalf("expected 4 digits, got %q", token)
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			t.Fatalf("token %q is not numeric: %v", token, err)
		}
		if n < 1000 || n > 9999 {
			t.Fatalf("token %d out of range 1000-9999", n)
		}
	}
}
