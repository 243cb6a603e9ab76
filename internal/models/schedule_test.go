package models

import (
	"errors"
	"sort"
	"testing"

	"github.com/localnerve/shift-schedule/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesCollapseRepeatedMembers(t *testing.T) {
	doc := Document{
		"2024-01-01": {
			"morning":   {"Alice", "Bob", "Alice"},
			"afternoon": {"Alice"},
		},
	}

	entries := doc.Entries()
	require.Len(t, entries, 3)

	var morning []string
	for _, e := range entries {
		if e.ShiftType == "morning" {
			morning = append(morning, string(e.MemberName))
		}
	}
	assert.Equal(t, []string{"Alice", "Bob"}, morning)
}

func TestEntriesEmptyDocument(t *testing.T) {
	assert.Empty(t, Document{}.Entries())
	assert.Empty(t, Document{"2024-01-01": {}}.Entries())
	assert.Empty(t, Document{"2024-01-01": {"morning": {}}}.Entries())
}

func TestFoldEntries(t *testing.T) {
	entries := []ScheduleEntry{
		{Date: "2024-01-01", ShiftType: "afternoon", MemberName: "Carol"},
		{Date: "2024-01-01", ShiftType: "morning", MemberName: "Bob"},
		{Date: "2024-01-01", ShiftType: "morning", MemberName: "Alice"},
		{Date: "2024-01-02", ShiftType: "morning", MemberName: "Alice"},
	}

	doc := FoldEntries(entries)
	assert.Equal(t, Document{
		"2024-01-01": {
			"afternoon": {"Carol"},
			"morning":   {"Bob", "Alice"},
		},
		"2024-01-02": {
			"morning": {"Alice"},
		},
	}, doc)
}

func TestFoldEntriesEmpty(t *testing.T) {
	doc := FoldEntries(nil)
	require.NotNil(t, doc)
	assert.Empty(t, doc)
}

func TestEntriesFoldRoundTrip(t *testing.T) {
	doc := Document{
		"2024-03-01": {"morning": {"Dana", "Eve"}, "afternoon": {"Frank"}},
		"2024-03-02": {"morning": {"Eve"}},
	}

	entries := doc.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].ShiftType < entries[j].ShiftType
	})

	assert.Equal(t, doc, FoldEntries(entries))
}

func TestMemberCounts(t *testing.T) {
	doc := Document{
		"2024-01-01": {"morning": {"Alice", "Bob", "Alice"}, "afternoon": {"Carol"}},
		"2024-01-02": {"morning": {}},
	}
	assert.Equal(t, map[string]int{"2024-01-01": 3, "2024-01-02": 0}, doc.MemberCounts())
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(` {"2024-01-01": {"morning": ["Alice", "Bob"]}, "2024-01-02": {}} `))
	require.NoError(t, err)
	assert.Equal(t, Document{
		"2024-01-01": {"morning": {"Alice", "Bob"}},
		"2024-01-02": {},
	}, doc)
}

func TestParseDocumentRejectsNonObjects(t *testing.T) {
	for _, body := range []string{``, `   `, `[]`, `[{"a": {}}]`, `"schedule"`, `null`, `42`, `true`} {
		_, err := ParseDocument([]byte(body))
		assert.ErrorIs(t, err, ErrNotObject, "body %q", body)
		assert.ErrorIs(t, err, types.ErrMalformedInput, "body %q", body)
	}
}

func TestParseDocumentRejectsWrongShapes(t *testing.T) {
	tests := map[string]string{
		"shift value not object": `{"2024-01-01": ["Alice"]}`,
		"shifts null":            `{"2024-01-01": null}`,
		"members not list":       `{"2024-01-01": {"morning": "Alice"}}`,
		"members null":           `{"2024-01-01": {"morning": null}}`,
		"member not string":      `{"2024-01-01": {"morning": [1]}}`,
		"member null":            `{"2024-01-01": {"morning": ["Alice", null]}}`,
		"truncated":              `{"2024-01-01": {"morning": ["Alice"`,
		"trailing data":          `{} {}`,
		"member object":          `{"2024-01-01": {"morning": [{"name": "Alice"}]}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDocument([]byte(body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrMalformedInput))
			assert.False(t, errors.Is(err, ErrNotObject))
		})
	}
}
