package handler

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"beauty-trends/internal/service"
	"beauty-trends/pkg/export"
	"beauty-trends/pkg/logger"
	"beauty-trends/pkg/trends"
)

// Controller serves the results of a finished run over HTTP
type Controller struct {
	results    service.ResultService
	defaultTop int
	startedAt  time.Time
	log        *logger.Logger
}

type ControllerConfig struct {
	DefaultTop int
}

type StatusResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Metrics   map[string]interface{} `json:"metrics"`
}

type ResultsResponse struct {
	RunID   string          `json:"run_id"`
	Count   int             `json:"count"`
	Results []export.Record `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewController(results service.ResultService, config ControllerConfig) *Controller {
	if config.DefaultTop <= 0 {
		config.DefaultTop = 5
	}
	return &Controller{
		results:    results,
		defaultTop: config.DefaultTop,
		startedAt:  time.Now(),
		log:        logger.GetLogger().WithField("component", "report_controller"),
	}
}

// NewApp builds a fiber app with the controller's routes registered
func NewApp(c *Controller) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "beauty-trends",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	c.Register(app)
	return app
}

func (c *Controller) Register(router fiber.Router) {
	router.Get("/health", c.Health)

	api := router.Group("/api")
	api.Get("/results", c.Results)
	api.Get("/top", c.Top)
	api.Get("/export.csv", c.ExportCSV)
	api.Get("/export.json", c.ExportJSON)
}

func (c *Controller) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(StatusResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Metrics: map[string]interface{}{
			"run_id":         c.results.RunID(),
			"results":        len(c.results.Results()),
			"uptime_seconds": int(time.Since(c.startedAt).Seconds()),
		},
	})
}

// Results lists every result in accumulation order
func (c *Controller) Results(ctx *fiber.Ctx) error {
	return ctx.JSON(c.response(c.results.Results()))
}

// Top returns the n highest scoring results, n defaulting to the configured top
func (c *Controller) Top(ctx *fiber.Ctx) error {
	n := c.defaultTop
	if raw := ctx.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "n must be a non-negative integer")
		}
		n = parsed
	}
	return ctx.JSON(c.response(c.results.TopN(n)))
}

func (c *Controller) ExportCSV(ctx *fiber.Ctx) error {
	return c.export(ctx, "text/csv; charset=utf-8", "analise_beleza_sp.csv", export.WriteCSV)
}

func (c *Controller) ExportJSON(ctx *fiber.Ctx) error {
	return c.export(ctx, fiber.MIMEApplicationJSONCharsetUTF8, "analise_beleza_sp.json", export.WriteJSON)
}

func (c *Controller) export(ctx *fiber.Ctx, contentType, filename string, write func(w io.Writer, results []trends.ScoredResult) error) error {
	results := c.results.Results()
	if len(results) == 0 {
		return fiber.NewError(fiber.StatusNotFound, export.ErrNothingToExport.Error())
	}

	var buf bytes.Buffer
	if err := write(&buf, results); err != nil {
		c.log.WithError(err).Error("Failed to encode export")
		return err
	}

	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(buf.Bytes())
}

func (c *Controller) response(results []trends.ScoredResult) ResultsResponse {
	return ResultsResponse{
		RunID:   c.results.RunID(),
		Count:   len(results),
		Results: export.Records(results),
	}
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return ctx.Status(code).JSON(errorResponse{Error: err.Error()})
}
