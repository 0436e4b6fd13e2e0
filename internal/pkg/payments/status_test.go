package payments

import (
	"testing"

	"github.com/anaepietro/wedding-backend/app/models"
)

func TestParseProviderStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "PAID", want: models.PaymentStatusPaid},
		{in: "paid", want: models.PaymentStatusPaid},
		{in: "PAGO", want: models.PaymentStatusPaid},
		{in: "PENDENTE", want: models.PaymentStatusPending},
		{in: "PENDING", want: models.PaymentStatusPending},
		{in: "WAITING", want: models.PaymentStatusPending},
		{in: "", want: models.PaymentStatusPending},
		{in: "AUTHORIZED", want: models.PaymentStatusAuthorized},
		{in: "IN_ANALYSIS", want: models.PaymentStatusInAnalysis},
		{in: "DECLINED", want: models.PaymentStatusDeclined},
		{in: "CANCELED", want: models.PaymentStatusCanceled},
		{in: "CANCELLED", want: models.PaymentStatusCanceled},
		{in: "  Paid ", want: models.PaymentStatusPaid},
		{in: "whatever", want: models.PaymentStatusUnknown},
	}

	for _, tt := range tests {
		if got := ParseProviderStatus(tt.in); got != tt.want {
			t.Fatalf("ParseProviderStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
