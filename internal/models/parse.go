package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/localnerve/shift-schedule/internal/types"
)

// ErrNotObject is returned by ParseDocument when the top level JSON value is not an object
var ErrNotObject = fmt.Errorf("%w: schedule document must be a JSON object", types.ErrMalformedInput)

// ParseDocument decodes a schedule document and checks its shape: an object of
// objects of string lists. Nulls at any level below the top are rejected.
func ParseDocument(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotObject
	}

	var raw map[string]map[string][]*string
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrMalformedInput, err)
	}

	doc := make(Document, len(raw))
	for date, shifts := range raw {
		if shifts == nil {
			return nil, fmt.Errorf("%w: date %q: shifts must be an object", types.ErrMalformedInput, date)
		}
		day := make(map[string][]string, len(shifts))
		for shiftType, members := range shifts {
			if members == nil {
				return nil, fmt.Errorf("%w: date %q shift %q: members must be a list", types.ErrMalformedInput, date, shiftType)
			}
			names := make([]string, 0, len(members))
			for i, member := range members {
				if member == nil {
					return nil, fmt.Errorf("%w: date %q shift %q: member %d must be a string", types.ErrMalformedInput, date, shiftType, i)
				}
				names = append(names, *member)
			}
			day[shiftType] = names
		}
		doc[date] = day
	}
	return doc, nil
}
