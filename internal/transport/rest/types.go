package rest

import (
	"bytes"
	"encoding/json"

	"github.com/meatfest/lead-service/internal/service"
)

// looseString accepts any JSON scalar where the form should have sent a
// string. Numbers and booleans keep their literal (the headcount field often
// arrives as a number); null, objects, and arrays decode to "".
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	switch b[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
	case '{', '[':
		*s = ""
	default:
		// number or boolean literal, coerced to its textual form
		*s = looseString(b)
	}
	return nil
}

// submitRequest mirrors the form payload. The honeypot arrives under the
// decoy name "website" so it reads like a real field to bots; humans leave
// it empty.
type submitRequest struct {
	Type          looseString `json:"type"`
	Name          looseString `json:"name"`
	Email         looseString `json:"email"`
	Phone         looseString `json:"phone"`
	EventDate     looseString `json:"eventDate"`
	EventLocation looseString `json:"eventLocation"`
	EventType     looseString `json:"eventType"`
	Headcount     looseString `json:"headcount"`
	Message       looseString `json:"message"`
	Honeypot      looseString `json:"website"`
}

func (r submitRequest) toInput() service.Input {
	return service.Input{
		Type:          string(r.Type),
		Name:          string(r.Name),
		Email:         string(r.Email),
		Phone:         string(r.Phone),
		EventDate:     string(r.EventDate),
		EventLocation: string(r.EventLocation),
		EventType:     string(r.EventType),
		Headcount:     string(r.Headcount),
		Message:       string(r.Message),
		Honeypot:      string(r.Honeypot),
	}
}
