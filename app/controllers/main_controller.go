package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
)

// MainController serves the static site pages.
type MainController struct{}

func NewMainController() *MainController {
	return &MainController{}
}

// HandleIndex handles GET /.
func (mc *MainController) HandleIndex(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{"flash": flash.Get(c)})
}

// HandleSuccess handles GET /sucesso, the provider redirect target after a
// completed payment.
func (mc *MainController) HandleSuccess(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString("<h1>Pagamento confirmado com sucesso!</h1>")
}

// HandleCancel handles GET /cancelado.
func (mc *MainController) HandleCancel(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString("<h1>Pagamento cancelado.</h1>")
}
