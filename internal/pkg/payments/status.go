package payments

import (
	"strings"

	"github.com/anaepietro/wedding-backend/app/models"
)

// ParseProviderStatus maps a provider-reported status literal onto the
// canonical internal enumeration. The provider mixes Portuguese and
// English literals ("PENDENTE", "PENDING", "WAITING") depending on which
// API surface produced the value; anything unrecognized becomes UNKNOWN
// and is still stored, since the reconciler accepts every transition.
func ParseProviderStatus(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "PENDENTE", "PENDING", "WAITING":
		return models.PaymentStatusPending
	case "AUTHORIZED":
		return models.PaymentStatusAuthorized
	case "PAID", "PAGO":
		return models.PaymentStatusPaid
	case "IN_ANALYSIS", "IN ANALYSIS":
		return models.PaymentStatusInAnalysis
	case "DECLINED":
		return models.PaymentStatusDeclined
	case "CANCELED", "CANCELLED":
		return models.PaymentStatusCanceled
	default:
		return models.PaymentStatusUnknown
	}
}
