package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/derelict/internal/presentation/animation"
	"github.com/aretw0/derelict/pkg/domain"
)

const progressWidth = 30

// TextHandler implements the standard line-based interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	// MaxInputSize bounds a single line. Zero uses DefaultMaxInputSize.
	MaxInputSize int
	// AnimationInterval is the delay between frames. Zero skips the animation.
	AnimationInterval time.Duration
	// Sequence builds the frames of an animated exit.
	Sequence func() animation.Sequence

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerMaxInputSize bounds the length of a line.
func WithTextHandlerMaxInputSize(size int) TextHandlerOption {
	return func(h *TextHandler) {
		h.MaxInputSize = size
	}
}

// WithTextHandlerAnimationInterval sets the frame delay of animated exits.
func WithTextHandlerAnimationInterval(d time.Duration) TextHandlerOption {
	return func(h *TextHandler) {
		h.AnimationInterval = d
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:            bufio.NewReader(r),
		Writer:            w,
		AnimationInterval: animation.DefaultInterval,
		Sequence:          animation.EscapePod,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines in the background so Input can give up on ctx cancellation.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			close(h.inputChan)
			return
		}
	}
}

func (h *TextHandler) Output(ctx context.Context, render *domain.Render) error {
	if render == nil {
		return nil
	}
	if render.Message != "" {
		fmt.Fprintf(h.Writer, "\n%s\n", render.Message)
	}

	text := render.Text
	if h.Renderer != nil {
		if rendered, err := h.Renderer(text); err == nil {
			text = rendered
		}
	}
	fmt.Fprintf(h.Writer, "\n%s\n", strings.TrimSpace(text))

	if render.Media != "" {
		fmt.Fprintf(h.Writer, "[%s]\n", render.Media)
	}
	if render.Input != nil && render.Input.Prompt != "" && render.Input.Prompt != render.Text {
		fmt.Fprintln(h.Writer, render.Input.Prompt)
	}
	for i, c := range render.Choices {
		fmt.Fprintf(h.Writer, "  %d) %s\n", i+1, c.Label)
	}
	if render.AwaitingInput() && len(render.Choices) > 0 {
		fmt.Fprintln(h.Writer, render.Input.Hint())
	}
	return nil
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInput(strings.TrimSpace(res.text), h.MaxInputSize)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	fmt.Fprintf(h.Writer, "\n[System] %s\n", msg)
	return nil
}

// Animate draws a progress bar while the sequence plays.
func (h *TextHandler) Animate(ctx context.Context, anim domain.Animation) error {
	if h.AnimationInterval <= 0 || h.Sequence == nil {
		return nil
	}
	label := "Launching"
	if anim.Media != "" {
		label = fmt.Sprintf("Launching [%s]", anim.Media)
	}
	err := animation.Play(ctx, h.Sequence(), h.AnimationInterval, func(seq animation.Sequence) {
		fmt.Fprintf(h.Writer, "\r%s %s", label, progressBar(seq.Progress()))
	})
	fmt.Fprintln(h.Writer)
	return err
}

func progressBar(progress float64) string {
	filled := int(progress * progressWidth)
	if filled > progressWidth {
		filled = progressWidth
	}
	return fmt.Sprintf("[%s%s] %3d%%",
		strings.Repeat("=", filled),
		strings.Repeat(" ", progressWidth-filled),
		int(progress*100))
}
