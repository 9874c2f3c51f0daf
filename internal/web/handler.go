package web

import (
	"bytes"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"futsal/internal/chart"
	"futsal/internal/logging"
	"futsal/internal/navigation"
	"futsal/internal/services"
)

// maxChartScale caps the device scale accepted by the chart endpoints
const maxChartScale = 4

// Handler serves the JSON API on top of the application services
type Handler struct {
	analysis *services.AnalysisService
	records  *services.RecordService
	settings *services.SettingsService
	transfer *services.TransferService
}

// NewHandler creates a new Handler
func NewHandler(
	records *services.RecordService,
	settings *services.SettingsService,
	transfer *services.TransferService,
	analysis *services.AnalysisService,
) *Handler {
	return &Handler{
		analysis: analysis,
		records:  records,
		settings: settings,
		transfer: transfer,
	}
}

// Health reports liveness and the stored record count
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"time":    time.Now().Unix(),
		"records": len(h.records.List(c.UserContext())),
	})
}

// ListRecords returns every stored record
func (h *Handler) ListRecords(c *fiber.Ctx) error {
	return c.JSON(h.records.List(c.UserContext()))
}

// GetRecord returns one record
func (h *Handler) GetRecord(c *fiber.Ctx) error {
	record, err := h.records.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(record)
}

// CreateRecord validates and stores a new record
func (h *Handler) CreateRecord(c *fiber.Ctx) error {
	var in services.RecordInput
	if err := bind(c, &in); err != nil {
		return err
	}

	record, err := h.records.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// UpdateRecord replaces the editable fields of a record
func (h *Handler) UpdateRecord(c *fiber.Ctx) error {
	var in services.RecordInput
	if err := bind(c, &in); err != nil {
		return err
	}

	record, err := h.records.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

// DeleteRecord removes one record
func (h *Handler) DeleteRecord(c *fiber.Ctx) error {
	if err := h.records.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// WipeRecords removes every record
func (h *Handler) WipeRecords(c *fiber.Ctx) error {
	if err := h.records.Wipe(c.UserContext()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// settingsResponse is what the record form needs to populate its pickers
type settingsResponse struct {
	CustomPlaces   []string `json:"customPlaces"`
	LastDate       string   `json:"lastDate"`
	Places         []string `json:"places"`
	SelectedTarget string   `json:"selectedTarget"`
	Targets        []string `json:"targets"`
}

// GetSettings returns venues, assist targets and the remembered entry date
func (h *Handler) GetSettings(c *fiber.Ctx) error {
	ctx := c.UserContext()
	return c.JSON(settingsResponse{
		CustomPlaces:   h.settings.Get(ctx).CustomPlaces,
		LastDate:       h.records.LastDate(ctx),
		Places:         h.settings.Places(ctx),
		SelectedTarget: h.settings.SelectedTarget(ctx),
		Targets:        h.settings.Targets(ctx),
	})
}

// AddPlace adds a custom venue
func (h *Handler) AddPlace(c *fiber.Ctx) error {
	var req NameRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.settings.AddPlace(c.UserContext(), req.Name); err != nil {
		return err
	}
	return h.GetSettings(c.Status(fiber.StatusCreated))
}

// RemovePlace removes a custom venue
func (h *Handler) RemovePlace(c *fiber.Ctx) error {
	if err := h.settings.RemovePlace(c.UserContext(), c.Params("name")); err != nil {
		return err
	}
	return h.GetSettings(c)
}

// AddTarget adds an assist target player
func (h *Handler) AddTarget(c *fiber.Ctx) error {
	var req NameRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.settings.AddTarget(c.UserContext(), req.Name); err != nil {
		return err
	}
	return h.GetSettings(c.Status(fiber.StatusCreated))
}

// RemoveTarget removes an assist target player
func (h *Handler) RemoveTarget(c *fiber.Ctx) error {
	if err := h.settings.RemoveTarget(c.UserContext(), c.Params("name")); err != nil {
		return err
	}
	return h.GetSettings(c)
}

// SelectTarget sets the preselected assist target
func (h *Handler) SelectTarget(c *fiber.Ctx) error {
	var req SelectTargetRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.settings.SelectTarget(c.UserContext(), req.Name); err != nil {
		return err
	}
	return h.GetSettings(c)
}

// analysisResponse adds the back-navigation target to a report
type analysisResponse struct {
	services.Report
	ReturnURL string `json:"returnUrl"`
}

// Analysis builds the report for ym, place and tag and remembers the filter
func (h *Handler) Analysis(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	report := h.analysis.Build(ctx, q.Analysis())
	if err := h.analysis.RememberFilter(ctx, q.Analysis()); err != nil {
		logging.Logger.Warn("Failed to remember filter", "error", err)
	}

	return c.JSON(analysisResponse{Report: report, ReturnURL: navigation.ReturnURL(q)})
}

// Chart renders one of the named analysis charts as PNG
func (h *Handler) Chart(c *fiber.Ctx) error {
	name := strings.TrimSuffix(c.Params("file"), ".png")

	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	scale, err := parseScale(c.Query("scale"))
	if err != nil {
		return err
	}

	report := h.analysis.Build(c.UserContext(), q.Analysis())
	canvas, ok := chart.Render(name, report.KPIs, report.Trend, scale)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "unknown chart "+name)
	}

	var buf bytes.Buffer
	if err := chart.EncodePNG(&buf, canvas); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(buf.Bytes())
}

// Export downloads every record as an export document
func (h *Handler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if _, err := h.transfer.Export(c.UserContext(), &buf); err != nil {
		return err
	}

	filename := "futsal-records-" + time.Now().Format("20060102") + ".json"
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// Import merges an uploaded export document into the store
func (h *Handler) Import(c *fiber.Ctx) error {
	result, err := h.transfer.Import(c.UserContext(), bytes.NewReader(c.Body()))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// parseQuery decodes the analysis query string
func parseQuery(c *fiber.Ctx) (navigation.Query, error) {
	values, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return navigation.Query{}, fiber.NewError(fiber.StatusBadRequest, "malformed query string")
	}
	return navigation.ParseQuery(values)
}

// parseScale reads the device scale; empty means 1
func parseScale(raw string) (float64, error) {
	if raw == "" {
		return 1, nil
	}
	scale, err := strconv.ParseFloat(raw, 64)
	if err != nil || scale <= 0 || scale > maxChartScale {
		return 0, fiber.NewError(fiber.StatusBadRequest, "scale must be a number in (0, 4]")
	}
	return scale, nil
}
