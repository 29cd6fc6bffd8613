package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aquaguard/water-monitor/internal/domain"
	"github.com/aquaguard/water-monitor/internal/service"
)

func Register(app *fiber.App, svcs *service.Services) {
	g := app.Group("/")

	g.Get("zones", func(c *fiber.Ctx) error {
		if svcs.Repos == nil {
			return c.Status(503).JSON(fiber.Map{"error": "zone catalog unavailable"})
		}
		items, err := svcs.Repos.ListZones()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(items)
	})

	// Score a reading on demand. Missing metrics get the documented
	// neutral defaults; the reading is also recorded into history.
	g.Post("assess", func(c *fiber.Ctx) error {
		var in domain.ReadingInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if in.Zone == "" {
			return c.Status(400).JSON(fiber.Map{"error": "zone is required"})
		}
		r := in.Reading(time.Now())
		a := svcs.Monitor.Assess(r)
		svcs.Monitor.Record(r)
		return c.JSON(a)
	})

	g.Get("zones/:zone/assessment", func(c *fiber.Ctx) error {
		latest := svcs.Monitor.Latest()
		a, ok := latest[c.Params("zone")]
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": "no assessment for zone"})
		}
		return c.JSON(a)
	})

	g.Get("zones/:zone/assessments", func(c *fiber.Ctx) error {
		if svcs.Repos == nil {
			return c.Status(503).JSON(fiber.Map{"error": "assessment log unavailable"})
		}
		items, err := svcs.Repos.RecentAssessments(c.Params("zone"), c.QueryInt("limit", 20))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(items)
	})

	g.Get("zones/:zone/prediction", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Monitor.Predict(c.Params("zone")))
	})

	g.Get("zones/:zone/report", func(c *fiber.Ctx) error {
		report, url, err := svcs.Monitor.GenerateReport(c.Params("zone"))
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"report": report, "archive_url": url})
	})

	g.Get("stats", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Monitor.Stats())
	})
}
