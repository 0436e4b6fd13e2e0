package controllers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/anaepietro/wedding-backend/internal/pkg/payments"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PaymentController serves the checkout endpoint, the provider webhook and
// the payment status/token lookups.
type PaymentController struct {
	svc *payments.Service
}

func NewPaymentController(svc *payments.Service) *PaymentController {
	return &PaymentController{svc: svc}
}

// HandlePay handles POST /pagar.
func (pc *PaymentController) HandlePay(c *fiber.Ctx) error {
	var in payments.CheckoutInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados incompletos."})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	result, err := pc.svc.CreateCheckout(ctx, in)
	if err != nil {
		if errors.Is(err, payments.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados incompletos."})
		}
		log.Printf("checkout failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno no servidor"})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// HandleNotification handles POST /notificacaopagbank. The provider must
// always receive a success-shaped response, including on internal errors,
// to prevent redundant retry deliveries; discrepancies surface only in the
// audit log.
func (pc *PaymentController) HandleNotification(c *fiber.Ctx) error {
	rawBody := append([]byte(nil), c.BodyRaw()...)
	headers := c.GetReqHeaders()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := pc.svc.ProcessNotification(ctx, rawBody, headers); err != nil {
		log.Printf("webhook processing failed: %v", err)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notificação processada com sucesso"})
}

// HandlePaymentStatus handles GET /pagamento-status/:id.
func (pc *PaymentController) HandlePaymentStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pagamento não encontrado"})
	}

	overview, err := pc.svc.GetPaymentOverview(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pagamento não encontrado"})
		}
		log.Printf("payment status lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao verificar status"})
	}

	return c.Status(fiber.StatusOK).JSON(overview)
}

// HandleVerifyToken handles POST /verificar_token, the AJAX validity
// check. Always answers 200; validity is carried in the body.
func (pc *PaymentController) HandleVerifyToken(c *fiber.Ctx) error {
	var in struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"valido": false, "mensagem": payments.MsgTokenMissing})
	}

	valid, msg := pc.svc.VerifyToken(c.Context(), in.Token)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"valido": valid, "mensagem": msg})
}
