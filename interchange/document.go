package interchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMalformedDocument = errors.New("malformed schedule document")

// GameRecord is one game in the flat format. BreakAfter is written only when
// non-zero.
type GameRecord struct {
	Stage      string `json:"stage"`
	Standing   string `json:"standing"`
	Home       string `json:"home"`
	Away       string `json:"away"`
	Official   string `json:"official"`
	BreakAfter int    `json:"break_after,omitempty"`
}

// FieldRecord lists the games of one field in play order.
type FieldRecord struct {
	Field string       `json:"field"`
	Games []GameRecord `json:"games"`
}

// Schedule is the whole flat document.
type Schedule []FieldRecord

// Decode reads a schedule, rejecting unknown keys and trailing data.
func Decode(r io.Reader) (Schedule, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var s Schedule
	if err := dec.Decode(&s); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxError):
			return nil, fmt.Errorf("%w: badly-formed JSON (at character %d)", ErrMalformedDocument, syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return nil, fmt.Errorf("%w: badly-formed JSON", ErrMalformedDocument)
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return nil, fmt.Errorf("%w: incorrect JSON type for %q", ErrMalformedDocument, unmarshalTypeError.Field)
			}
			return nil, fmt.Errorf("%w: incorrect JSON type (at character %d)", ErrMalformedDocument, unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			return nil, fmt.Errorf("%w: unknown key %s", ErrMalformedDocument, strings.TrimPrefix(err.Error(), "json: unknown field "))
		default:
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: document must hold a single JSON value", ErrMalformedDocument)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: document must be an array of fields", ErrMalformedDocument)
	}
	return s, s.check()
}

func (s Schedule) check() error {
	for i, f := range s {
		for j, g := range f.Games {
			if g.BreakAfter < 0 {
				return fmt.Errorf("%w: field %d game %d has negative break_after", ErrMalformedDocument, i, j)
			}
		}
	}
	return nil
}

// Marshal writes a schedule as compact JSON.
func (s Schedule) Marshal() ([]byte, error) {
	if s == nil {
		s = Schedule{}
	}
	return json.Marshal(s)
}
