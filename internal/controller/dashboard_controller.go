package controller

import (
	"fmt"
	"io"
	"strings"

	"housing-empire-ai/internal/constant"
	"housing-empire-ai/internal/dto"
	"housing-empire-ai/internal/entity"
	"housing-empire-ai/internal/pkg/logger"
	"housing-empire-ai/internal/pkg/serverutils"
	"housing-empire-ai/internal/service"
	"housing-empire-ai/internal/web"
	"housing-empire-ai/pkg/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	ShowPage(ctx *fiber.Ctx) error
	SubmitPage(ctx *fiber.Ctx) error
}

// pageLoader fills the parts of a view that come from resources or session
// state. Failures become banners; a page always renders.
type pageLoader func(ctx *fiber.Ctx, sess *store.Session, view *dto.PageView)

// pageAction handles a form post and returns the response status.
type pageAction func(ctx *fiber.Ctx, sess *store.Session, view *dto.PageView) int

type dashboardController struct {
	sessionService    service.ISessionService
	leadService       service.ILeadService
	kpiService        service.IKPIService
	manualService     service.IManualService
	generationService service.IGenerationService
	validate          *validator.Validate
	renderer          *web.Renderer
	logoURL           string
	logger            logger.ILogger

	loaders map[entity.Page]pageLoader
	actions map[entity.Page]pageAction
}

type DashboardDeps struct {
	SessionService    service.ISessionService
	LeadService       service.ILeadService
	KPIService        service.IKPIService
	ManualService     service.IManualService
	GenerationService service.IGenerationService
	Validator         *validator.Validate
	Renderer          *web.Renderer
	LogoURL           string
	Logger            logger.ILogger
}

func NewDashboardController(deps DashboardDeps) IDashboardController {
	c := &dashboardController{
		sessionService:    deps.SessionService,
		leadService:       deps.LeadService,
		kpiService:        deps.KPIService,
		manualService:     deps.ManualService,
		generationService: deps.GenerationService,
		validate:          deps.Validator,
		renderer:          deps.Renderer,
		logoURL:           deps.LogoURL,
		logger:            deps.Logger,
	}

	c.loaders = map[entity.Page]pageLoader{
		entity.PageHome:            c.loadHome,
		entity.PageSettings:        func(*fiber.Ctx, *store.Session, *dto.PageView) {},
		entity.PageDashboard:       c.loadDashboard,
		entity.PageLeadIntake:      c.loadLeadIntake,
		entity.PageDealAnalyzer:    func(*fiber.Ctx, *store.Session, *dto.PageView) {},
		entity.PageCalculators:     c.loadCalculators,
		entity.PageScriptGenerator: c.loadScriptGenerator,
		entity.PageLOIBuilder:      c.loadLOIBuilder,
		entity.PageEmpireManual:    c.loadEmpireManual,
	}
	c.actions = map[entity.Page]pageAction{
		entity.PageSettings:        c.saveCredential,
		entity.PageLeadIntake:      c.uploadLeads,
		entity.PageDealAnalyzer:    c.generateAction(entity.GenerationAnalyze),
		entity.PageScriptGenerator: c.generateAction(entity.GenerationScript),
		entity.PageLOIBuilder:      c.generateAction(entity.GenerationLOI),
	}
	return c
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
	h := r.Group("/pages")
	h.Get(":slug", c.ShowPage)
	h.Post(":slug", c.SubmitPage)
}

func (c *dashboardController) Home(ctx *fiber.Ctx) error {
	return c.renderPage(ctx, entity.PageHome, nil)
}

func (c *dashboardController) ShowPage(ctx *fiber.Ctx) error {
	page, ok := entity.ParsePage(ctx.Params("slug"))
	if !ok {
		return c.renderNotFound(ctx)
	}
	return c.renderPage(ctx, page, nil)
}

func (c *dashboardController) SubmitPage(ctx *fiber.Ctx) error {
	page, ok := entity.ParsePage(ctx.Params("slug"))
	if !ok {
		return c.renderNotFound(ctx)
	}
	action, ok := c.actions[page]
	if !ok {
		return c.renderPage(ctx, page, func(_ *fiber.Ctx, _ *store.Session, view *dto.PageView) int {
			view.AddBanner(dto.BannerError, fmt.Sprintf("%s has nothing to submit.", page.Title()))
			return fiber.StatusMethodNotAllowed
		})
	}
	return c.renderPage(ctx, page, action)
}

// renderPage runs action (if any) then the page's loader and writes the
// result. The action's status wins.
func (c *dashboardController) renderPage(ctx *fiber.Ctx, page entity.Page, action pageAction) error {
	sess := serverutils.CurrentSession(ctx)
	view := c.newView(page, sess)

	status := fiber.StatusOK
	if action != nil {
		status = action(ctx, sess, view)
	}
	c.loaders[page](ctx, sess, view)
	view.CredentialSet = sess.HasCredential()

	return c.write(ctx, status, view)
}

func (c *dashboardController) renderNotFound(ctx *fiber.Ctx) error {
	sess := serverutils.CurrentSession(ctx)
	view := c.newView(entity.PageHome, sess)
	view.AddBanner(dto.BannerError, fmt.Sprintf("Unknown page %q.", ctx.Params("slug")))
	c.loaders[entity.PageHome](ctx, sess, view)
	return c.write(ctx, fiber.StatusNotFound, view)
}

func (c *dashboardController) write(ctx *fiber.Ctx, status int, view *dto.PageView) error {
	ctx.Status(status)
	ctx.Type("html", "utf-8")
	if err := c.renderer.Render(ctx, view); err != nil {
		c.logger.Error("WEB", "Failed to render page", map[string]interface{}{
			"page":  view.Page.Slug(),
			"error": err.Error(),
		})
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render page")
	}
	return nil
}

func (c *dashboardController) newView(page entity.Page, sess *store.Session) *dto.PageView {
	nav := make([]dto.NavItem, 0, len(entity.AllPages))
	for _, p := range entity.AllPages {
		nav = append(nav, dto.NavItem{Slug: p.Slug(), Title: p.Title(), Active: p == page})
	}
	return &dto.PageView{
		AppTitle:      constant.AppTitle,
		Page:          page,
		Nav:           nav,
		LogoURL:       c.logoURL,
		CredentialSet: sess.HasCredential(),
	}
}

func (c *dashboardController) loadHome(_ *fiber.Ctx, _ *store.Session, view *dto.PageView) {
	view.Modules = constant.HomeModules
}

func (c *dashboardController) loadDashboard(ctx *fiber.Ctx, _ *store.Session, view *dto.PageView) {
	snapshot, err := c.kpiService.LoadSnapshot(ctx.UserContext())
	if err != nil {
		c.logger.Warn("KPI", "KPI snapshot unavailable", map[string]interface{}{"error": err.Error()})
		view.AddBanner(dto.BannerError, err.Error())
		return
	}
	view.KPI = snapshot
}

func (c *dashboardController) loadLeadIntake(_ *fiber.Ctx, sess *store.Session, view *dto.PageView) {
	view.Leads = sess.Leads()
}

func (c *dashboardController) loadCalculators(_ *fiber.Ctx, _ *store.Session, view *dto.PageView) {
	view.AddBanner(dto.BannerInfo, constant.MessageCalculators)
}

func (c *dashboardController) loadScriptGenerator(_ *fiber.Ctx, _ *store.Session, view *dto.PageView) {
	view.DealTypes = constant.DealTypes
}

func (c *dashboardController) loadLOIBuilder(_ *fiber.Ctx, _ *store.Session, view *dto.PageView) {
	view.Structures = constant.DealStructures
}

func (c *dashboardController) loadEmpireManual(ctx *fiber.Ctx, _ *store.Session, view *dto.PageView) {
	manual, err := c.manualService.Render(ctx.UserContext())
	if err != nil {
		c.logger.Warn("MANUAL", "Empire manual unavailable", map[string]interface{}{"error": err.Error()})
		view.AddBanner(dto.BannerError, err.Error())
		return
	}
	view.ManualHTML = manual
}

func (c *dashboardController) saveCredential(ctx *fiber.Ctx, sess *store.Session, view *dto.PageView) int {
	var req dto.CredentialRequest
	if err := ctx.BodyParser(&req); err != nil {
		view.AddBanner(dto.BannerError, "Invalid form submission.")
		return fiber.StatusBadRequest
	}

	if err := c.sessionService.SetCredential(ctx.UserContext(), sess, req.APIKey); err != nil {
		status, level, msg := classify(err)
		view.AddBanner(level, msg)
		return status
	}

	if req.APIKey == "" {
		view.AddBanner(dto.BannerInfo, constant.MessageCredentialCleared)
	} else {
		view.AddBanner(dto.BannerSuccess, constant.MessageCredentialSaved)
	}
	return fiber.StatusOK
}

func (c *dashboardController) uploadLeads(ctx *fiber.Ctx, sess *store.Session, view *dto.PageView) int {
	header, err := ctx.FormFile("leads")
	if err != nil {
		view.AddBanner(dto.BannerWarning, constant.MessageNoLeadFile)
		return fiber.StatusBadRequest
	}

	file, err := header.Open()
	if err != nil {
		view.AddBanner(dto.BannerError, err.Error())
		return fiber.StatusBadRequest
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		view.AddBanner(dto.BannerError, err.Error())
		return fiber.StatusBadRequest
	}

	leads, err := c.leadService.LoadLeads(ctx.UserContext(), sess, strings.Clone(header.Filename), data)
	if err != nil {
		status, level, msg := classify(err)
		view.AddBanner(level, msg)
		return status
	}

	view.AddBanner(dto.BannerSuccess, fmt.Sprintf("Loaded %d leads from %s.", leads.Len(), header.Filename))
	return fiber.StatusOK
}

func (c *dashboardController) generateAction(kind entity.GenerationKind) pageAction {
	return func(ctx *fiber.Ctx, sess *store.Session, view *dto.PageView) int {
		var req dto.GenerationRequest
		if err := ctx.BodyParser(&req); err != nil {
			view.AddBanner(dto.BannerError, "Invalid form submission.")
			return fiber.StatusBadRequest
		}
		view.Form = req

		if !sess.HasCredential() {
			status, level, msg := classify(service.ErrMissingCredential)
			view.AddBanner(level, msg)
			return status
		}
		if err := dto.ValidateGeneration(c.validate, kind, req); err != nil {
			view.AddBanner(dto.BannerError, dto.ValidationMessage(err))
			return fiber.StatusBadRequest
		}

		res, err := c.generationService.Generate(ctx.UserContext(), sess, kind, req.Fields())
		if err != nil {
			status, level, msg := classify(err)
			view.AddBanner(level, msg)
			return status
		}

		view.AddBanner(dto.BannerSuccess, res.Heading)
		view.Result = res
		return fiber.StatusOK
	}
}
