package rotation

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"wezback/internal/logging"
)

// PromptMessage asks the user to trigger the next cycle.
const PromptMessage = "Press Enter to change the wallpaper or Ctrl+C to exit..."

// RunPrompt waits for one line on in before each cycle. It returns nil when
// in reaches EOF or ctx is cancelled. clearScreen, when non-nil, runs before every
// prompt.
func (e *Engine) RunPrompt(ctx context.Context, in io.Reader, out io.Writer, clearScreen func(io.Writer)) error {
	lines := make(chan error)
	reader := bufio.NewReader(in)
	next := func() {
		go func() {
			_, err := reader.ReadString('\n')
			select {
			case lines <- err:
			case <-ctx.Done():
			}
		}()
	}

	for {
		if clearScreen != nil {
			clearScreen(out)
		}
		fmt.Fprintln(out, PromptMessage)
		next()

		select {
		case <-ctx.Done():
			return nil
		case err := <-lines:
			if errors.Is(err, io.EOF) {
				e.logger(ctx).Debug("prompt input closed")
				return nil
			}
			if err != nil {
				return fmt.Errorf("read prompt input: %w", err)
			}
		}
		e.cycle(ctx)
	}
}

// RunInterval rotates immediately and then once per tick until ctx is done.
func (e *Engine) RunInterval(ctx context.Context, every time.Duration) error {
	if every <= 0 {
		return fmt.Errorf("rotation interval must be positive, got %s", every)
	}
	logger := e.logger(ctx)
	logger.Info("interval rotation started",
		logging.String(logging.FieldEventType, "interval_started"),
		logging.Duration("interval", every),
		logging.String("mode", e.Mode.String()),
	)

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	e.cycle(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("interval rotation stopped", logging.String(logging.FieldEventType, "interval_stopped"))
			return nil
		case <-ticker.C:
			e.cycle(ctx)
		}
	}
}
