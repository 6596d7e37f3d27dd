package controller

import (
	"fmt"
	"strings"

	"housing-empire-ai/internal/constant"
	"housing-empire-ai/internal/dto"
	"housing-empire-ai/internal/entity"
	"housing-empire-ai/internal/pkg/serverutils"
	"housing-empire-ai/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IAPIController interface {
	RegisterRoutes(r fiber.Router)
	ListPages(ctx *fiber.Ctx) error
	GetCredential(ctx *fiber.Ctx) error
	SetCredential(ctx *fiber.Ctx) error
	GetKPI(ctx *fiber.Ctx) error
	GetLeads(ctx *fiber.Ctx) error
	UploadLeads(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
}

type apiController struct {
	sessionService    service.ISessionService
	leadService       service.ILeadService
	kpiService        service.IKPIService
	generationService service.IGenerationService
	validate          *validator.Validate
}

func NewAPIController(
	sessionService service.ISessionService,
	leadService service.ILeadService,
	kpiService service.IKPIService,
	generationService service.IGenerationService,
	validate *validator.Validate,
) IAPIController {
	return &apiController{
		sessionService:    sessionService,
		leadService:       leadService,
		kpiService:        kpiService,
		generationService: generationService,
		validate:          validate,
	}
}

func (c *apiController) RegisterRoutes(r fiber.Router) {
	r.Get("/pages", c.ListPages)

	s := r.Group("/session")
	s.Get("/credential", c.GetCredential)
	s.Put("/credential", c.SetCredential)

	r.Get("/kpi", c.GetKPI)
	r.Get("/leads", c.GetLeads)
	r.Post("/leads", c.UploadLeads)
	r.Post("/generate/:kind", c.Generate)
}

func (c *apiController) ListPages(ctx *fiber.Ctx) error {
	res := make([]dto.PageSummary, 0, len(entity.AllPages))
	for _, p := range entity.AllPages {
		res = append(res, dto.PageSummary{Slug: p.Slug(), Title: p.Title()})
	}
	return ctx.JSON(serverutils.SuccessResponse("Pages", res))
}

func (c *apiController) GetCredential(ctx *fiber.Ctx) error {
	sess := serverutils.CurrentSession(ctx)
	return ctx.JSON(serverutils.SuccessResponse("Credential status", dto.CredentialResponse{CredentialSet: sess.HasCredential()}))
}

func (c *apiController) SetCredential(ctx *fiber.Ctx) error {
	var req dto.CredentialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}

	sess := serverutils.CurrentSession(ctx)
	if err := c.sessionService.SetCredential(ctx.UserContext(), sess, req.APIKey); err != nil {
		return c.fail(ctx, err)
	}

	msg := constant.MessageCredentialSaved
	if req.APIKey == "" {
		msg = constant.MessageCredentialCleared
	}
	return ctx.JSON(serverutils.SuccessResponse(msg, dto.CredentialResponse{CredentialSet: sess.HasCredential()}))
}

func (c *apiController) GetKPI(ctx *fiber.Ctx) error {
	snapshot, err := c.kpiService.LoadSnapshot(ctx.UserContext())
	if err != nil {
		return c.fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("KPI snapshot", snapshot))
}

func (c *apiController) GetLeads(ctx *fiber.Ctx) error {
	leads := serverutils.CurrentSession(ctx).Leads()
	if leads == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "No leads uploaded yet"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Current leads", leads))
}

// UploadLeads takes the CSV as the raw request body. The file name is
// optional and only labels the set.
func (c *apiController) UploadLeads(ctx *fiber.Ctx) error {
	fileName := strings.Clone(ctx.Query("file_name", "upload.csv"))

	leads, err := c.leadService.LoadLeads(ctx.UserContext(), serverutils.CurrentSession(ctx), fileName, ctx.Body())
	if err != nil {
		return c.fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(fmt.Sprintf("Loaded %d leads", leads.Len()), leads))
}

func (c *apiController) Generate(ctx *fiber.Ctx) error {
	kind, err := entity.ParseGenerationKind(ctx.Params("kind"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
	}

	var req dto.GenerationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	sess := serverutils.CurrentSession(ctx)
	if !sess.HasCredential() {
		return c.fail(ctx, service.ErrMissingCredential)
	}
	if err := dto.ValidateGeneration(c.validate, kind, req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, dto.ValidationMessage(err)))
	}

	res, err := c.generationService.Generate(ctx.UserContext(), sess, kind, req.Fields())
	if err != nil {
		return c.fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Heading, res))
}

func (c *apiController) fail(ctx *fiber.Ctx, err error) error {
	status, _, msg := classify(err)
	return ctx.Status(status).JSON(serverutils.ErrorResponse(status, msg))
}
