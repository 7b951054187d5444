package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/mehuljariwala/admin-dashboard/internal/log"
	"github.com/mehuljariwala/admin-dashboard/internal/services"
	"github.com/mehuljariwala/admin-dashboard/internal/validate"
)

type ReportHandler struct {
	Reports *services.ReportService
}

// Sales returns the aggregates behind the dashboard and report charts,
// optionally bounded by ?from=yyyy-mm-dd&to=yyyy-mm-dd.
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	from, to := c.Query("from"), c.Query("to")
	for _, dt := range []string{from, to} {
		if dt != "" {
			if _, ok := validate.Date(dt); !ok {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date filter"})
			}
		}
	}
	report, err := h.Reports.Sales(from, to)
	if err != nil {
		applog.Error(c, "report.sales.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not build report"})
	}
	return c.JSON(report)
}
