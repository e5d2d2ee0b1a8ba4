package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/derelict/pkg/domain"
)

// EventType tags each line written by the JSONHandler.
type EventType string

const (
	EventRender    EventType = "render"
	EventSystem    EventType = "system"
	EventAnimation EventType = "animation"
)

// Event is one JSON line of output.
type Event struct {
	Type      EventType         `json:"type"`
	Render    *domain.Render    `json:"render,omitempty"`
	Message   string            `json:"message,omitempty"`
	Animation *domain.Animation `json:"animation,omitempty"`
}

// JSONHandler implements the IOHandler interface for JSON-Lines communication.
// Animations are announced but not played: the consumer draws them.
type JSONHandler struct {
	Reader       *bufio.Reader
	Writer       io.Writer
	Encoder      *json.Encoder
	MaxInputSize int
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, render *domain.Render) error {
	if render == nil {
		return nil
	}
	return h.Encoder.Encode(Event{Type: EventRender, Render: render})
}

// Input reads one line. A JSON string is unquoted; anything else is taken raw.
// Lines the sanitizer rejects are reported as system events and skipped.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := h.Reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return "", err
		}
		text = strings.TrimSpace(text)

		var val string
		if err := json.Unmarshal([]byte(text), &val); err == nil {
			text = val
		}
		clean, serr := SanitizeInput(text, h.MaxInputSize)
		if serr == nil {
			return clean, nil
		}
		if werr := h.SystemOutput(ctx, fmt.Sprintf("Error: %v. Please try again.", serr)); werr != nil {
			return "", werr
		}
		if err == io.EOF {
			return "", io.EOF
		}
	}
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(Event{Type: EventSystem, Message: msg})
}

func (h *JSONHandler) Animate(ctx context.Context, anim domain.Animation) error {
	return h.Encoder.Encode(Event{Type: EventAnimation, Animation: &anim})
}
