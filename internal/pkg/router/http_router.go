package router

import (
	"github.com/anaepietro/wedding-backend/app/controllers"
	"github.com/gofiber/fiber/v2"
)

// HttpRouter installs the site routes. Controllers arrive fully
// constructed; the router holds no state of its own.
type HttpRouter struct {
	Main    *controllers.MainController
	Payment *controllers.PaymentController
	Comment *controllers.CommentController
	Guest   *controllers.GuestController
}

func NewHttpRouter(main *controllers.MainController, payment *controllers.PaymentController, comment *controllers.CommentController, guest *controllers.GuestController) *HttpRouter {
	return &HttpRouter{Main: main, Payment: payment, Comment: comment, Guest: guest}
}

func (h *HttpRouter) InstallRouter(app *fiber.App) {
	app.Get("/", h.Main.HandleIndex)
	app.Get("/sucesso", h.Main.HandleSuccess)
	app.Get("/cancelado", h.Main.HandleCancel)

	// Payments
	app.Post("/pagar", h.Payment.HandlePay)
	app.Get("/pagamento-status/:id", h.Payment.HandlePaymentStatus)
	app.Post("/verificar_token", h.Payment.HandleVerifyToken)

	// Provider webhook; must always be reachable and always acknowledges.
	app.Post("/notificacaopagbank", h.Payment.HandleNotification)

	// Guestbook
	app.Get("/comentarios", h.Comment.HandleList)
	app.Get("/comentar/:token?", h.Comment.HandleCommentPage)
	app.Post("/comentar/:token?", h.Comment.HandleCommentSubmit)

	// Attendance list + manager panel
	app.Get("/lista/", h.Guest.HandleListPage)
	app.Post("/lista/", h.Guest.HandleListSubmit)
	app.Get("/manager/:token", h.Guest.HandleManager)
	app.Post("/alterar_status_convidado/:id", h.Guest.HandleGuestStatusUpdate)
}
