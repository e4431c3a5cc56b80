package controller

import (
	"strconv"

	"elevennote-be/internal/dto"
	"elevennote-be/internal/pkg/serverutils"
	"elevennote-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	services      service.INoteServiceFactory
	jwtMiddleware fiber.Handler
}

func NewNoteController(services service.INoteServiceFactory, jwtMiddleware fiber.Handler) INoteController {
	return &noteController{
		services:      services,
		jwtMiddleware: jwtMiddleware,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	h.Use(c.jwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *noteController) noteService(ctx *fiber.Ctx) (service.INoteService, error) {
	userId, err := serverutils.UserId(ctx)
	if err != nil {
		return nil, err
	}
	return c.services.ForUser(userId), nil
}

func parseNoteId(ctx *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid note id")
	}
	return id, nil
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	svc, err := c.noteService(ctx)
	if err != nil {
		return err
	}

	res, err := svc.ListNotes(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	svc, err := c.noteService(ctx)
	if err != nil {
		return err
	}

	var req dto.NoteCreate
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	created, err := svc.CreateNote(ctx.UserContext(), req)
	if err != nil {
		return err
	}

	res := dto.NoteCreateResponse{Created: created}
	if !created {
		return ctx.JSON(serverutils.SuccessResponse("Note was not created", res))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	svc, err := c.noteService(ctx)
	if err != nil {
		return err
	}

	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	res, err := svc.GetNoteById(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	svc, err := c.noteService(ctx)
	if err != nil {
		return err
	}

	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	var req dto.NoteEdit
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	// The path wins over any id in the body.
	req.NoteId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	updated, err := svc.UpdateNote(ctx.UserContext(), req)
	if err != nil {
		return err
	}

	message := "Success update note"
	if !updated {
		message = "Note was not updated"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, dto.NoteUpdateResponse{Updated: updated}))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	svc, err := c.noteService(ctx)
	if err != nil {
		return err
	}

	id, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	deleted, err := svc.DeleteNote(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	message := "Success delete note"
	if !deleted {
		message = "Note was not deleted"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, dto.NoteDeleteResponse{Deleted: deleted}))
}
