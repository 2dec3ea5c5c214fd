package review

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Ordinals match the numeric values clients send (0, 1, 2).
var ordered = []Status{StatusPending, StatusApproved, StatusRejected}

func InitialStatus() Status {
	return StatusPending
}

func (s Status) Valid() bool {
	for _, known := range ordered {
		if s == known {
			return true
		}
	}
	return false
}

// IsPublic reports whether reviews in this status are listed publicly.
func (s Status) IsPublic() bool {
	return s == StatusApproved
}

// CanTransition allows any move between known states. Setting the current
// status again is accepted as a no-op.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.Validation("invalid_status", "Unknown review status.")
	}
	return nil
}

func ParseStatusName(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n < len(ordered) {
			return ordered[n], true
		}
		return "", false
	}
	for _, known := range ordered {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}

// ParseStatusBody decodes the raw body of a status update. Accepted forms:
// a JSON number (0-2), a JSON string, an object with a "status" member, or
// bare text.
func ParseStatusBody(body []byte) (Status, error) {
	body = bytes.TrimSpace(body)
	invalid := httperr.Validation("invalid_status", "Status must be Pending, Approved or Rejected.")
	if len(body) == 0 {
		return "", invalid
	}

	var raw string
	switch body[0] {
	case '"':
		if err := json.Unmarshal(body, &raw); err != nil {
			return "", invalid
		}
	case '{':
		var wrapped struct {
			Status json.RawMessage `json:"status"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil || len(wrapped.Status) == 0 {
			return "", invalid
		}
		if wrapped.Status[0] == '{' {
			return "", invalid
		}
		return ParseStatusBody(wrapped.Status)
	default:
		raw = string(body)
	}

	status, ok := ParseStatusName(raw)
	if !ok {
		return "", invalid
	}
	return status, nil
}
