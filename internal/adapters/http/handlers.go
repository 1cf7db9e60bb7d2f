package http

import (
	"fmt"
	"html"

	"github.com/gofiber/fiber/v2"

	"github.com/samirrijal/dronegeo/internal/core/domain"
)

const (
	opDistance     = "distance"
	opProximity    = "proximity"
	opNextPosition = "next_position"
	opRegion       = "region"
)

// IndexHandler serves the static welcome page.
func IndexHandler(deps *Dependencies) fiber.Handler {
	url := html.EscapeString(deps.Settings.ExternalURL)
	page := fmt.Sprintf(`<html><body><h1>Welcome from ILP</h1>`+
		`<h4>ILP-REST-Service-URL:</h4> <a href="%s" target="_blank"> %s </a>`+
		`</body></html>`, url, url)

	return func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(page)
	}
}

// UIDHandler returns the static service identifier.
func UIDHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(deps.Settings.UID)
	}
}

// DistanceHandler returns the distance in degrees between two positions.
func DistanceHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tagOperation(c, opDistance)

		var req *domain.DistanceRequest
		if err := c.BodyParser(&req); err != nil {
			return reject(c, opDistance, err)
		}
		if err := deps.Positions.ValidateDistance(req); err != nil {
			return reject(c, opDistance, err)
		}
		return c.JSON(deps.Positions.CalculateDistance(req))
	}
}

// IsCloseToHandler reports whether two positions are within the close threshold.
func IsCloseToHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tagOperation(c, opProximity)

		var req *domain.DistanceRequest
		if err := c.BodyParser(&req); err != nil {
			return reject(c, opProximity, err)
		}
		if err := deps.Positions.ValidateDistance(req); err != nil {
			return reject(c, opProximity, err)
		}
		return c.JSON(deps.Positions.IsCloseTo(req, deps.Positions.CloseThreshold()))
	}
}

// NextPositionHandler returns the position one step away at the given angle.
func NextPositionHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tagOperation(c, opNextPosition)

		var req *domain.NextPositionRequest
		if err := c.BodyParser(&req); err != nil {
			return reject(c, opNextPosition, err)
		}
		if err := deps.Positions.ValidateNextPosition(req); err != nil {
			return reject(c, opNextPosition, err)
		}
		return c.JSON(deps.Positions.CalculateNextPosition(req))
	}
}

// IsInRegionHandler reports whether a position lies inside a closed polygon.
func IsInRegionHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tagOperation(c, opRegion)

		var req *domain.RegionRequest
		if err := c.BodyParser(&req); err != nil {
			return reject(c, opRegion, err)
		}
		if err := deps.Positions.ValidateRegion(req); err != nil {
			return reject(c, opRegion, err)
		}
		return c.JSON(deps.Positions.IsInRegion(c.UserContext(), req))
	}
}
