package payments

import (
	"context"
	"errors"

	"github.com/anaepietro/wedding-backend/internal/pkg/pagbank"
)

// CheckoutClient is the outbound port to the payment provider.
type CheckoutClient interface {
	CreateCheckout(ctx context.Context, req pagbank.CheckoutRequest) (*pagbank.CheckoutResponse, error)
}

// AuditLogger receives structured payment-trail events.
type AuditLogger interface {
	Log(title string, data interface{})
}

// CheckoutItem is one line item as submitted by the site frontend.
type CheckoutItem struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int    `json:"unit_amount"`
}

// CheckoutInput is the payload of POST /pagar.
type CheckoutInput struct {
	Name  string         `json:"nome" validate:"required"`
	Email string         `json:"email" validate:"required,email"`
	TaxID string         `json:"cpf" validate:"required"`
	Items []CheckoutItem `json:"items" validate:"required,min=1"`
	Total float64        `json:"total"`
}

// CheckoutResult is what a successful checkout creation returns to the
// frontend.
type CheckoutResult struct {
	CheckoutURL string `json:"checkout_url"`
	PaymentID   uint   `json:"pagamento_id"`
	ReferenceID string `json:"reference_id"`
	OrderID     string `json:"order_id"`
	ChargeID    string `json:"charge_id"`
	Status      string `json:"status"`
}

// NotificationResult describes what a webhook delivery ended up doing.
// The HTTP layer acknowledges deliveries regardless of its content.
type NotificationResult struct {
	ReferenceID string
	Status      string
	Matched     bool
	Paid        bool
	EmailSent   bool
}

// Guest-facing validity messages, also part of the /verificar_token JSON
// contract.
const (
	MsgTokenMissing   = "Token não fornecido."
	MsgTokenInvalid   = "Token inválido."
	MsgPaymentPending = "Pagamento ainda não confirmado."
	MsgTokenUsed      = "Este token já foi utilizado."
	MsgCommentEmpty   = "O comentário não pode estar vazio."
	MsgTokenValid     = "Token válido!"
)

var (
	// ErrInvalidInput marks checkout requests with missing required fields.
	ErrInvalidInput = errors.New("dados incompletos")
	// ErrPayLinkMissing is returned when the provider response carries no
	// link tagged PAY. Distinct from a transport/provider failure.
	ErrPayLinkMissing = errors.New("checkout link not found in provider response")

	ErrTokenMissing   = errors.New("token not provided")
	ErrTokenInvalid   = errors.New("token does not match any payment")
	ErrPaymentPending = errors.New("payment not confirmed yet")
	ErrTokenUsed      = errors.New("token already used")
	ErrCommentEmpty   = errors.New("comment body is empty")
)

// MessageFor translates a token-gate error into the guest-facing message.
func MessageFor(err error) string {
	switch {
	case errors.Is(err, ErrTokenMissing):
		return MsgTokenMissing
	case errors.Is(err, ErrTokenInvalid):
		return MsgTokenInvalid
	case errors.Is(err, ErrPaymentPending):
		return MsgPaymentPending
	case errors.Is(err, ErrTokenUsed):
		return MsgTokenUsed
	case errors.Is(err, ErrCommentEmpty):
		return MsgCommentEmpty
	default:
		return "Erro interno. Tente novamente."
	}
}
