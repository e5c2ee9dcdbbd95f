// Package gateway forwards inbound requests to the backend services and
// relays their responses verbatim.
package gateway

import (
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
)

type Upstream struct {
	Name   string
	Target string
}

// Forward proxies the request to the upstream, stripping the /api prefix. The
// backend's status and body pass through untouched; only when no response was
// received at all does the gateway substitute a service-unavailable envelope.
func (u Upstream) Forward(c *fiber.Ctx) error {
	url := u.Target + strings.TrimPrefix(c.OriginalURL(), "/api")

	if err := proxy.Do(c, url); err != nil {
		slog.Error("upstream unreachable", "upstream", u.Name, "url", url, "error", err)
		return response.Fail(c, apperr.New(apperr.KindUpstreamUnavailable, u.Name+" service is unavailable"))
	}

	c.Response().Header.Del(fiber.HeaderServer)
	return nil
}

// Mount registers the upstream under every method of /api/<prefix> and its
// subpaths.
func Mount(app *fiber.App, prefix string, u Upstream) {
	app.All("/api/"+prefix, u.Forward)
	app.All("/api/"+prefix+"/*", u.Forward)
}
