package controllers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/anaepietro/wedding-backend/app/repository"
	"github.com/anaepietro/wedding-backend/internal/pkg/cache"
	"github.com/anaepietro/wedding-backend/internal/pkg/payments"
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
)

const (
	commentListCacheKey = "comments:list"
	commentListCacheTTL = 60 * time.Second
)

// CommentController serves the public guestbook and the token-gated
// comment form.
type CommentController struct {
	svc   *payments.Service
	repo  repository.CommentRepository
	cache *cache.Cache
}

func NewCommentController(svc *payments.Service, repo repository.CommentRepository, cache *cache.Cache) *CommentController {
	return &CommentController{svc: svc, repo: repo, cache: cache}
}

// HandleList handles GET /comentarios.
func (cc *CommentController) HandleList(c *fiber.Ctx) error {
	if cached, err := cc.cache.Get(commentListCacheKey); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(cached)
	}

	comments, err := cc.repo.ListNewestFirst()
	if err != nil {
		log.Printf("listing comments failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao listar comentários"})
	}

	out := make([]fiber.Map, 0, len(comments))
	for _, comment := range comments {
		out = append(out, fiber.Map{
			"id":                   comment.ID,
			"convidado_nome":       comment.GuestName,
			"convidado_comentario": comment.Body,
			"data_criacao":         comment.CreatedAt.Format("02/01/2006 15:04"),
		})
	}

	if body, err := json.Marshal(out); err == nil {
		if err := cc.cache.Set(commentListCacheKey, string(body), commentListCacheTTL); err != nil {
			log.Printf("caching comment list failed: %v", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

// HandleCommentPage handles GET /comentar/:token?. The form is only
// unlocked for a valid token; invalid ones render the page with the
// reason instead.
func (cc *CommentController) HandleCommentPage(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return c.Render("comentar", fiber.Map{"token": "", "flash": flash.Get(c)})
	}

	valid, msg := cc.svc.VerifyToken(c.Context(), token)
	if !valid {
		return c.Render("comentar", fiber.Map{
			"token": "",
			"flash": fiber.Map{"type": "error", "message": msg},
		})
	}

	return c.Render("comentar", fiber.Map{"token": token, "flash": flash.Get(c)})
}

// HandleCommentSubmit handles POST /comentar/:token?, consuming the token
// and creating the comment.
func (cc *CommentController) HandleCommentSubmit(c *fiber.Ctx) error {
	token := c.FormValue("token", c.Params("token"))
	body := c.FormValue("comentario")

	if _, err := cc.svc.ConsumeToken(c.Context(), token, body); err != nil {
		return c.Render("comentar", fiber.Map{
			"token": token,
			"flash": fiber.Map{"type": "error", "message": payments.MessageFor(err)},
		})
	}

	if err := cc.cache.Delete(commentListCacheKey); err != nil {
		log.Printf("invalidating comment list cache failed: %v", err)
	}

	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": "Comentário salvo com sucesso!",
	}).Redirect("/")
}
