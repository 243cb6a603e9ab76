package middleware

import (
	"net/url"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/shift-schedule/internal/utils"
)

// maxUnescape bounds how many layers of percent-encoding are peeled off
const maxUnescape = 3

// BlockPrefix answers 404 for any request at or below prefix, so the storage
// directory can never be reached through static file serving. Matching is
// case-insensitive and runs on the cleaned path, both as received and as
// decoded by the file server.
func BlockPrefix(prefix string) fiber.Handler {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" || prefix == "." {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	prefix = "/" + prefix

	return func(c *fiber.Ctx) error {
		for _, p := range requestPaths(c) {
			if isUnder(path.Clean("/"+p), prefix) {
				return utils.NotFoundResponse(c)
			}
		}
		return c.Next()
	}
}

// requestPaths lists every spelling of the request path a handler may act on.
func requestPaths(c *fiber.Ctx) []string {
	raw := c.Path()
	paths := []string{raw, string(c.Context().Path())}

	for i := 0; i < maxUnescape; i++ {
		decoded, err := url.PathUnescape(raw)
		if err != nil || decoded == raw {
			break
		}
		paths = append(paths, decoded)
		raw = decoded
	}
	return paths
}

func isUnder(p, prefix string) bool {
	if len(p) < len(prefix) || !strings.EqualFold(p[:len(prefix)], prefix) {
		return false
	}
	return len(p) == len(prefix) || p[len(prefix)] == '/'
}
