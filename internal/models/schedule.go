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

package models

import (
	"time"
)

// Document is the nested schedule view exchanged with clients and stored in
// the legacy file: date -> shift type -> ordered member names.
type Document map[string]map[string][]string

// ScheduleEntry is one assigned member for a date and shift type
type ScheduleEntry struct {
	ID         uint64      `gorm:"primaryKey;autoIncrement"`
	Date       ExactString `gorm:"column:date;size:32;not null;uniqueIndex:idx_schedule_slot_member,priority:1"`
	ShiftType  ExactString `gorm:"column:shift_type;size:64;not null;uniqueIndex:idx_schedule_slot_member,priority:2"`
	MemberName ExactString `gorm:"column:member_name;size:255;not null;uniqueIndex:idx_schedule_slot_member,priority:3"`
	CreatedAt  time.Time
}

// TableName overrides the table name for ScheduleEntry
func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}

// Entries flattens the document into one entry per distinct
// (date, shift type, member). Member order within a shift is kept; repeated
// members collapse onto their first occurrence.
func (d Document) Entries() []ScheduleEntry {
	var entries []ScheduleEntry
	for date, shifts := range d {
		for shiftType, members := range shifts {
			seen := make(map[string]struct{}, len(members))
			for _, member := range members {
				if _, ok := seen[member]; ok {
					continue
				}
				seen[member] = struct{}{}
				entries = append(entries, ScheduleEntry{
					Date:       ExactString(date),
					ShiftType:  ExactString(shiftType),
					MemberName: ExactString(member),
				})
			}
		}
	}
	return entries
}

// FoldEntries groups entries by date, then shift type, appending members in
// the order given. Dates without entries do not appear in the result.
func FoldEntries(entries []ScheduleEntry) Document {
	doc := make(Document)
	for _, entry := range entries {
		date, shiftType := string(entry.Date), string(entry.ShiftType)
		shifts, ok := doc[date]
		if !ok {
			shifts = make(map[string][]string)
			doc[date] = shifts
		}
		shifts[shiftType] = append(shifts[shiftType], string(entry.MemberName))
	}
	return doc
}

// MemberCounts reports how many distinct assignments each date holds,
// counting a member once per shift.
func (d Document) MemberCounts() map[string]int {
	counts := make(map[string]int, len(d))
	for date, shifts := range d {
		counts[date] = 0
		for _, members := range shifts {
			seen := make(map[string]struct{}, len(members))
			for _, member := range members {
				seen[member] = struct{}{}
			}
			counts[date] += len(seen)
		}
	}
	return counts
}
