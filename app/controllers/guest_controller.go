package controllers

import (
	"errors"
	"fmt"
	"log"

	"github.com/anaepietro/wedding-backend/app/models"
	"github.com/anaepietro/wedding-backend/app/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"
)

// GuestController manages the attendance list and its manager panel. The
// panel is gated by a static token supplied via ADMIN_TOKEN at startup.
type GuestController struct {
	repo       repository.GuestRepository
	adminToken string
}

func NewGuestController(repo repository.GuestRepository, adminToken string) *GuestController {
	return &GuestController{repo: repo, adminToken: adminToken}
}

// HandleListPage handles GET /lista/.
func (gc *GuestController) HandleListPage(c *fiber.Ctx) error {
	return c.Render("lista_convidados", fiber.Map{"flash": flash.Get(c)})
}

// HandleListSubmit handles POST /lista/: `metodo` selects registration or
// search, both form-encoded.
func (gc *GuestController) HandleListSubmit(c *fiber.Ctx) error {
	switch c.FormValue("metodo") {
	case "cadastrar":
		return gc.registerGuest(c)
	case "pesquisar":
		return gc.searchGuest(c)
	default:
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Método inválido.",
		}).Redirect("/lista/")
	}
}

func (gc *GuestController) registerGuest(c *fiber.Ctx) error {
	name := c.FormValue("nome")

	if _, err := gc.repo.GetByName(name); err == nil {
		return flash.WithError(c, fiber.Map{
			"type":    "warning",
			"message": fmt.Sprintf("%s já está na lista.", name),
		}).Redirect("/lista/")
	}

	guest := &models.Guest{
		Name:   name,
		Phone:  c.FormValue("telefone"),
		Email:  c.FormValue("email"),
		Status: models.GuestStatusPending,
	}
	if err := guest.Validate(); err != nil {
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Dados incompletos.",
		}).Redirect("/lista/")
	}
	if err := gc.repo.Create(guest); err != nil {
		log.Printf("registering guest failed: %v", err)
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Erro ao confirmar presença.",
		}).Redirect("/lista/")
	}

	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": "Presença confirmada com sucesso!",
	}).Redirect("/lista/")
}

func (gc *GuestController) searchGuest(c *fiber.Ctx) error {
	name := c.FormValue("nome")

	guest, err := gc.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return flash.WithError(c, fiber.Map{
				"type":    "warning",
				"message": fmt.Sprintf("Nenhum convidado chamado %s encontrado.", name),
			}).Redirect("/lista/")
		}
		log.Printf("searching guest failed: %v", err)
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Erro ao pesquisar convidado.",
		}).Redirect("/lista/")
	}

	message := fmt.Sprintf("%s, seu status é pendente.", guest.Name)
	if guest.Status == models.GuestStatusConfirmed {
		message = fmt.Sprintf("%s, sua presença está confirmada!", guest.Name)
	}
	return flash.WithSuccess(c, fiber.Map{
		"type":    "info",
		"message": message,
	}).Redirect("/lista/")
}

// HandleManager handles GET /manager/:token, the admin panel behind the
// shared static token.
func (gc *GuestController) HandleManager(c *fiber.Ctx) error {
	token := c.Params("token")
	if gc.adminToken == "" || token != gc.adminToken {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	guests, err := gc.repo.List()
	if err != nil {
		log.Printf("listing guests failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Erro ao carregar lista")
	}

	return c.Render("manager", fiber.Map{
		"guests": guests,
		"token":  token,
		"flash":  flash.Get(c),
	})
}

// HandleGuestStatusUpdate handles POST /alterar_status_convidado/:id from
// the manager panel.
func (gc *GuestController) HandleGuestStatusUpdate(c *fiber.Ctx) error {
	managerURL := "/manager/" + c.FormValue("token")

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Convidado não encontrado.",
		}).Redirect(managerURL)
	}

	status := c.FormValue("status")
	if status == "" {
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Status não fornecido.",
		}).Redirect(managerURL)
	}

	guest, err := gc.repo.GetByID(uint(id))
	if err != nil {
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Convidado não encontrado.",
		}).Redirect(managerURL)
	}

	if err := gc.repo.UpdateStatus(guest.ID, status); err != nil {
		log.Printf("updating guest status failed: %v", err)
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Erro ao atualizar status.",
		}).Redirect(managerURL)
	}

	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": fmt.Sprintf("Status de %s atualizado para %s.", guest.Name, status),
	}).Redirect(managerURL)
}
