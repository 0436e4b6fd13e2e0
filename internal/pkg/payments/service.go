package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/anaepietro/wedding-backend/app/models"
	"github.com/anaepietro/wedding-backend/internal/pkg/mail"
	"github.com/anaepietro/wedding-backend/internal/pkg/pagbank"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service implements the payment workflow: checkout creation against the
// provider, webhook reconciliation and the single-use comment token gate.
type Service struct {
	repo     Repository
	client   CheckoutClient
	mailer   mail.Sender
	audit    AuditLogger
	baseURL  string
	validate *validator.Validate
}

// NewService wires the service from its collaborators. baseURL is the
// public deployment URL used to build the webhook callback and the
// comment redirect.
func NewService(repo Repository, client CheckoutClient, mailer mail.Sender, audit AuditLogger, baseURL string) *Service {
	return &Service{
		repo:     repo,
		client:   client,
		mailer:   mailer,
		audit:    audit,
		baseURL:  strings.TrimRight(baseURL, "/"),
		validate: validator.New(),
	}
}

// CreateCheckout validates the gift request, submits a checkout to the
// provider and persists the pending Payment. Nothing is persisted when the
// provider call fails; the raw request is audit-logged regardless of
// outcome.
func (s *Service) CreateCheckout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	s.audit.Log("REQUEST RECEIVED /pagar", in)

	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	token, err := GenerateAccessToken()
	if err != nil {
		return nil, fmt.Errorf("generating access token: %w", err)
	}
	referenceID := "REF-" + uuid.NewString()

	items := make([]pagbank.Item, 0, len(in.Items))
	for i, item := range in.Items {
		name := item.Name
		if name == "" {
			name = fmt.Sprintf("Item %d", i+1)
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		items = append(items, pagbank.Item{
			// Every line item carries the reference id; the provider's
			// webhook reports items, not the parent order.
			ReferenceID: referenceID,
			Name:        name,
			Quantity:    quantity,
			UnitAmount:  item.UnitAmount,
		})
	}

	req := pagbank.CheckoutRequest{
		ReferenceID: referenceID,
		Customer: pagbank.Customer{
			Name:  in.Name,
			Email: in.Email,
			TaxID: in.TaxID,
		},
		Items:            items,
		NotificationURLs: []string{s.baseURL + "/notificacaopagbank"},
		RedirectURL:      s.baseURL + "/comentar/" + token,
	}
	s.audit.Log("REQUEST SENT TO PAGBANK /checkouts", req)

	resp, err := s.client.CreateCheckout(ctx, req)
	if err != nil {
		s.audit.Log("PAGBANK CHECKOUT FAILED", map[string]string{"erro": err.Error()})
		return nil, fmt.Errorf("creating provider checkout: %w", err)
	}
	s.audit.Log("RESPONSE RECEIVED FROM PAGBANK /checkouts", resp)

	status := models.PaymentStatusPending
	var chargeID *string
	chargeIDValue := ""
	if len(resp.Charges) > 0 {
		status = ParseProviderStatus(resp.Charges[0].Status)
		if resp.Charges[0].ID != "" {
			chargeIDValue = resp.Charges[0].ID
			chargeID = &chargeIDValue
		}
	}

	link, ok := resp.PayLink()
	if !ok {
		s.audit.Log("PAGBANK RESPONSE WITHOUT PAY LINK", resp)
		return nil, ErrPayLinkMissing
	}

	itemsJSON, err := json.Marshal(in.Items)
	if err != nil {
		return nil, fmt.Errorf("serializing items snapshot: %w", err)
	}

	payment := &models.Payment{
		Name:        in.Name,
		Email:       in.Email,
		TaxID:       in.TaxID,
		ItemSummary: fmt.Sprintf("%d itens", len(in.Items)),
		ItemsJSON:   string(itemsJSON),
		Total:       in.Total,
		Status:      status,
		ReferenceID: referenceID,
		ChargeID:    chargeID,
		Token:       token,
	}
	if err := s.repo.CreatePayment(payment); err != nil {
		return nil, fmt.Errorf("persisting payment: %w", err)
	}

	log.Printf("payment created | id=%d ref=%s status=%s", payment.ID, referenceID, status)

	return &CheckoutResult{
		CheckoutURL: link,
		PaymentID:   payment.ID,
		ReferenceID: referenceID,
		OrderID:     resp.ID,
		ChargeID:    chargeIDValue,
		Status:      status,
	}, nil
}

// notificationPayload is the subset of the provider webhook body the
// reconciler cares about.
type notificationPayload struct {
	Status string `json:"status"`
	Items  []struct {
		ReferenceID string `json:"reference_id"`
	} `json:"items"`
	Charges []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"charges"`
	Customer struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"customer"`
}

// ProcessNotification reconciles one webhook delivery. The raw payload and
// headers are persisted first, unconditionally; after that every step is
// best-effort, since the provider must receive a success acknowledgment
// either way. The returned error is only non-nil when even the audit
// write failed.
func (s *Service) ProcessNotification(ctx context.Context, payload []byte, headers map[string][]string) (*NotificationResult, error) {
	_ = ctx
	result := &NotificationResult{}

	headersJSON, err := json.Marshal(headers)
	if err != nil {
		headersJSON = []byte("{}")
	}
	s.audit.Log("NOTIFICATION RECEIVED /notificacaopagbank", map[string]string{
		"headers": string(headersJSON),
		"body":    string(payload),
	})

	notification := &models.PaymentNotification{
		PayloadJSON: string(payload),
		HeadersJSON: string(headersJSON),
	}
	if err := s.repo.CreateNotification(notification); err != nil {
		log.Printf("webhook: persisting notification failed: %v", err)
		return result, fmt.Errorf("persisting notification: %w", err)
	}

	var body notificationPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		s.audit.Log("NOTIFICATION PAYLOAD MALFORMED", map[string]string{"erro": err.Error()})
		return result, nil
	}

	// The provider embeds the correlation key per item, not top-level.
	if len(body.Items) > 0 {
		result.ReferenceID = body.Items[0].ReferenceID
	}

	rawStatus := body.Status
	if len(body.Charges) > 0 {
		rawStatus = body.Charges[0].Status
	}
	result.Status = ParseProviderStatus(rawStatus)

	if result.ReferenceID == "" {
		log.Printf("webhook: notification without reference_id, payload incomplete?")
		s.audit.Log("NOTIFICATION WITHOUT REFERENCE ID", map[string]string{"status": result.Status})
		return result, nil
	}

	payment, err := s.repo.GetPaymentByReference(result.ReferenceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("webhook: no payment found for reference_id %s", result.ReferenceID)
			s.audit.Log("NOTIFICATION UNMATCHED", map[string]string{"reference_id": result.ReferenceID})
			return result, nil
		}
		log.Printf("webhook: payment lookup failed: %v", err)
		return result, nil
	}

	previous := payment.Status
	if err := s.repo.UpdateFromNotification(payment, result.Status, body.Customer.Name, body.Customer.Email); err != nil {
		log.Printf("webhook: updating payment %s failed: %v", result.ReferenceID, err)
		return result, nil
	}
	result.Matched = true

	// A downgrade after PAID is applied as delivered; the audit trail keeps
	// the previous status visible.
	s.audit.Log("NOTIFICATION PROCESSED", map[string]string{
		"reference_id":    result.ReferenceID,
		"previous_status": previous,
		"new_status":      result.Status,
		"raw_status":      rawStatus,
	})
	log.Printf("payment %s updated: %s -> %s", result.ReferenceID, previous, result.Status)

	if result.Status == models.PaymentStatusPaid {
		result.Paid = true
		result.EmailSent = s.sendConfirmationEmail(payment)
	}

	return result, nil
}

// sendConfirmationEmail delivers the access token to the guest. Failures
// never propagate: by the time this runs the payment state is already
// durable and the provider still gets its acknowledgment.
func (s *Service) sendConfirmationEmail(payment *models.Payment) bool {
	name := payment.CustomerName
	if name == "" {
		name = payment.Name
	}
	subject := "Pagamento confirmado!"
	htmlBody := fmt.Sprintf(`
		<h2>Olá, %s!</h2>
		<p>Seu presente foi recebido com sucesso.</p>
		<p>Use este token para comentar: <b>%s</b></p>
		<p>Ou acesse direto: <a href="%s/comentar/%s">deixar um comentário</a></p>
		<p><strong>Ana &amp; Pietro</strong></p>`,
		name, payment.Token, s.baseURL, payment.Token)

	if err := s.mailer.Send(payment.NotifyEmail(), subject, htmlBody); err != nil {
		log.Printf("webhook: confirmation email to %s failed: %v", payment.NotifyEmail(), err)
		s.audit.Log("CONFIRMATION EMAIL FAILED", map[string]string{
			"reference_id": payment.ReferenceID,
			"erro":         err.Error(),
		})
		return false
	}
	return true
}

// VerifyToken runs the read-only validity check used by the comment page
// and the AJAX endpoint. No state is mutated.
func (s *Service) VerifyToken(ctx context.Context, token string) (bool, string) {
	_, err := s.lookupValidPayment(ctx, token)
	if err != nil {
		return false, MessageFor(err)
	}
	return true, MsgTokenValid
}

// ConsumeToken creates the guest comment and invalidates the token in one
// operation. A second attempt with the same token fails the used-sentinel
// check, so at most one comment per payment can ever exist.
func (s *Service) ConsumeToken(ctx context.Context, token, commentBody string) (*models.Comment, error) {
	payment, err := s.lookupValidPayment(ctx, token)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(commentBody) == "" {
		return nil, ErrCommentEmpty
	}

	comment := &models.Comment{
		GuestName: payment.Name,
		Body:      strings.TrimSpace(commentBody),
		PaymentID: payment.ID,
	}
	if err := s.repo.ConsumeToken(payment, strings.TrimSpace(token), comment); err != nil {
		if errors.Is(err, ErrTokenUsed) {
			return nil, ErrTokenUsed
		}
		return nil, fmt.Errorf("consuming token: %w", err)
	}

	log.Printf("comment created for payment %d, token consumed", payment.ID)
	return comment, nil
}

// lookupValidPayment applies the shared validity chain: token present,
// payment exists, payment paid, token not yet consumed.
func (s *Service) lookupValidPayment(ctx context.Context, token string) (*models.Payment, error) {
	_ = ctx
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenMissing
	}

	payment, err := s.repo.GetPaymentByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("payment lookup: %w", err)
	}
	if !payment.IsPaid() {
		return nil, ErrPaymentPending
	}
	if payment.TokenConsumed() {
		return nil, ErrTokenUsed
	}
	return payment, nil
}

// PaymentOverview is the /pagamento-status response.
type PaymentOverview struct {
	Status string  `json:"status"`
	Total  float64 `json:"valor"`
	Name   string  `json:"nome"`
}

// GetPaymentOverview reports a payment's state in the site's simplified
// vocabulary: anything not yet paid shows as pending.
func (s *Service) GetPaymentOverview(ctx context.Context, id uint) (*PaymentOverview, error) {
	_ = ctx
	payment, err := s.repo.GetPaymentByID(id)
	if err != nil {
		return nil, err
	}

	status := "PENDENTE"
	if payment.IsPaid() {
		status = "PAGO"
	}
	return &PaymentOverview{Status: status, Total: payment.Total, Name: payment.Name}, nil
}
