package http

import (
	"bytes"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"weather-page/internal/geolocation"
	"weather-page/internal/render"
)

// ForecastResponse carries the markup of the page regions written by one
// page load. Regions that were not written are absent and must be left as
// they are.
type ForecastResponse struct {
	State       string                   `json:"state" example:"rendered"`
	Coordinates *geolocation.Coordinates `json:"coordinates,omitempty"`
	Regions     map[string]string        `json:"regions"`
}

// ConditionResponse describes a weather code and its icon.
type ConditionResponse struct {
	Code        int    `json:"code" example:"0"`
	Description string `json:"description" example:"Clear Sky"`
	Icon        string `json:"icon" example:"sun"`
	IconURL     string `json:"icon_url" example:"/static/images/sun.svg"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: lat"`
}

// handleIndex serves the host page.
func (r *routes) handleIndex(c *fiber.Ctx) error {
	var buf bytes.Buffer
	err := r.page.Execute(&buf, render.PageData{
		Title:            r.opts.Title,
		AppName:          r.opts.AppName,
		StaticURL:        staticPrefix,
		ForecastEndpoint: forecastEndpoint,
		Year:             time.Now().Year(),
	})
	if err != nil {
		r.l.Error(err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to render page")
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// GetForecast godoc
// @Summary Render the forecast regions for a page load
// @Description Takes the outcome of the browser geolocation request, fetches the forecast for the reported position and returns the markup of the page regions that changed.
// @Tags Forecast
// @Produce json
// @Param status query string false "Geolocation outcome" Enums(ok, unsupported, denied, error) default(ok)
// @Param lat query number false "Latitude, required when status is ok" minimum(-90) maximum(90) example(40.0)
// @Param lon query number false "Longitude, required when status is ok" minimum(-180) maximum(180) example(-75.0)
// @Param reason query string false "Browser error message for denied or error"
// @Success 200 {object} ForecastResponse "Rendered regions"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Router /api/v1/forecast [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/api/v1/forecast?lat=40.0&lon=-75.0"
func (r *routes) handleForecastCall(c *fiber.Ctx) error {
	status, err := geolocation.ParseStatus(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid geolocation status",
		})
	}

	report := geolocation.Report{
		Status: status,
		Reason: c.Query("reason"),
	}

	if status == geolocation.StatusOK {
		lat := c.Query("lat")
		lon := c.Query("lon")

		// Check for required parameters
		if lat == "" {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Missing required parameter: lat",
			})
		}

		if lon == "" {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Missing required parameter: lon",
			})
		}

		latFloat, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Invalid latitude format",
			})
		}

		if !(latFloat >= -90 && latFloat <= 90) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Latitude must be between -90 and 90",
			})
		}

		lonFloat, err := strconv.ParseFloat(lon, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Invalid longitude format",
			})
		}

		if !(lonFloat >= -180 && lonFloat <= 180) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Longitude must be between -180 and 180",
			})
		}

		report.Latitude = latFloat
		report.Longitude = lonFloat
	}

	doc := render.NewDocument()
	res := r.service.Load(c.Context(), geolocation.FromReport(report), doc)

	regions := make(map[string]string, 2)
	for _, region := range doc.Regions() {
		regions[string(region)] = doc.HTML(region)
	}

	return c.JSON(ForecastResponse{
		State:       res.State.String(),
		Coordinates: res.Coordinates,
		Regions:     regions,
	})
}

// ListConditions godoc
// @Summary List weather conditions
// @Description Lists the WMO weather codes the page can describe, with their icons.
// @Tags Forecast
// @Produce json
// @Success 200 {array} ConditionResponse "Known weather codes"
// @Router /api/v1/conditions [get]
func (r *routes) handleConditionsCall(c *fiber.Ctx) error {
	entries := r.table.Entries()

	out := make([]ConditionResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ConditionResponse{
			Code:        e.Code,
			Description: e.Description,
			Icon:        string(e.Icon),
			IconURL:     r.renderer.IconURL(e.Icon),
		})
	}

	return c.JSON(out)
}
