// schedule.go
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

package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/shift-schedule/internal/models"
	"github.com/localnerve/shift-schedule/internal/types"
	"github.com/localnerve/shift-schedule/internal/utils"
)

// ScheduleStore is the storage the schedule routes read and overwrite
type ScheduleStore interface {
	Load(ctx context.Context) (models.Document, error)
	ReplaceAll(ctx context.Context, doc models.Document) error
}

// ScheduleHandler handles the schedule routes
type ScheduleHandler struct {
	Store ScheduleStore
}

// GetSchedule handles GET /api/schedule
// @Summary Get the schedule
// @Description Get the whole schedule as date -> shift type -> member names
// @Tags Schedule
// @Produce json
// @Success 200 {object} models.Document
// @Failure 500 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.ErrorResponseStruct
// @Router /schedule [get]
func (h *ScheduleHandler) GetSchedule(c *fiber.Ctx) error {
	doc, err := h.Store.Load(c.UserContext())
	if err != nil {
		return storeErrorResponse(c, err, "Failed to load schedule.")
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	return utils.SuccessResponse(c, doc, fiber.StatusOK)
}

// PutSchedule handles PUT /api/schedule
// @Summary Replace the schedule
// @Description Replace the whole schedule. Repeated members in one shift are stored once.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param body body models.Document true "Schedule document"
// @Success 200 {object} utils.OKResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.ErrorResponseStruct
// @Router /schedule [put]
func (h *ScheduleHandler) PutSchedule(c *fiber.Ctx) error {
	doc, err := models.ParseDocument(c.Body())
	if err != nil {
		if errors.Is(err, models.ErrNotObject) {
			return utils.ErrorResponse(c, "Request body must be a JSON object.", fiber.StatusBadRequest)
		}
		return utils.ErrorResponse(c, "Invalid schedule: "+err.Error(), fiber.StatusBadRequest)
	}

	if err := h.Store.ReplaceAll(c.UserContext(), doc); err != nil {
		return storeErrorResponse(c, err, "Failed to save schedule.")
	}

	return utils.OKResponse(c)
}

// storeErrorResponse maps store errors to 5xx responses
func storeErrorResponse(c *fiber.Ctx, err error, message string) error {
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)

	if errors.Is(err, types.ErrStorageUnavailable) {
		return utils.ErrorResponse(c, message, fiber.StatusServiceUnavailable)
	}
	return utils.ErrorResponse(c, message, fiber.StatusInternalServerError)
}
