// server.go
//
// A shift schedule data service backed by a relational store
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of shift-schedule.
// shift-schedule is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// shift-schedule is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with shift-schedule.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package server

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/shift-schedule/internal/config"
	"github.com/localnerve/shift-schedule/internal/handlers"
	"github.com/localnerve/shift-schedule/internal/middleware"
	"github.com/localnerve/shift-schedule/internal/types"
	"github.com/localnerve/shift-schedule/internal/utils"

	_ "github.com/localnerve/shift-schedule/docs/api" // Swagger docs
)

// Options tune New
type Options struct {
	// LogOutput receives the request log; nil disables request logging.
	LogOutput io.Writer
	// Metrics registers the Prometheus middleware and /metrics.
	Metrics bool
}

// New builds the Fiber app serving the schedule API, the static front end
// and the operational endpoints.
func New(cfg *config.Config, store handlers.ScheduleStore, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	if opts.LogOutput != nil {
		app.Use(logger.New(logger.Config{Output: opts.LogOutput}))
	}
	app.Use(compress.New())

	// The storage directory must never be served
	app.Use(middleware.BlockPrefix(filepath.Base(cfg.DataDir)))

	// Prometheus metrics
	if opts.Metrics {
		prometheus := fiberprometheus.New("shift_schedule")
		prometheus.RegisterAt(app, "/metrics")
		app.Use(prometheus.Middleware)
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	scheduleHandler := &handlers.ScheduleHandler{Store: store}
	api.Get("/schedule", scheduleHandler.GetSchedule)
	api.Put("/schedule", scheduleHandler.PutSchedule)
	api.Get("/health", handlers.GetHealth)

	// Front end
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		app.Static("/", cfg.StaticDir, fiber.Static{
			Index: "index.html",
		})
	}

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c)
	})

	return app
}

// ErrorHandler maps errors returned from handlers and middleware to
// {"error": message} bodies
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var customErr *types.CustomError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &customErr):
		code = customErr.Code
		message = customErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	case errors.Is(err, types.ErrMalformedInput):
		code = fiber.StatusBadRequest
		message = err.Error()
	}

	return utils.ErrorResponse(c, message, code)
}
