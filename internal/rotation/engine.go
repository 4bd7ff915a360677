package rotation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"wezback/internal/catalog"
	"wezback/internal/config"
	"wezback/internal/failure"
	"wezback/internal/logging"
	"wezback/internal/patcher"
	"wezback/internal/selection"
)

// NoSelectionMessage is printed when the candidate pool is empty.
const NoSelectionMessage = "Could not select a wallpaper."

// Result summarizes one rotation cycle.
type Result struct {
	Mode       catalog.Mode
	Candidates int
	Image      string
	Patch      patcher.Result
}

// Engine rotates the wallpaper referenced by Settings.ConfigFile.
type Engine struct {
	Settings config.Settings
	Mode     catalog.Mode
	Chooser  *selection.Chooser
	Patcher  patcher.Patcher
	Logger   *slog.Logger

	// Out receives the confirmation line after a successful patch.
	Out io.Writer
	// ErrOut receives NoSelectionMessage.
	ErrOut io.Writer

	pinned []string
	pin    bool
}

// PinCatalog scans once and makes later cycles reuse the result.
func (e *Engine) PinCatalog(ctx context.Context) error {
	candidates, err := e.build(ctx)
	if err != nil {
		return err
	}
	e.pinned = candidates
	e.pin = true
	return nil
}

// Rotate runs a single cycle. An empty pool yields an error marked
// failure.ErrEmptyCatalog and leaves the config file untouched.
func (e *Engine) Rotate(ctx context.Context) (Result, error) {
	result := Result{Mode: e.Mode}
	logger := e.logger(ctx)

	candidates := e.pinned
	if !e.pin {
		var err error
		candidates, err = e.build(ctx)
		if err != nil {
			return result, err
		}
	}
	result.Candidates = len(candidates)

	image, ok := e.Chooser.Choose(candidates)
	if !ok {
		return result, failure.Wrap(failure.ErrEmptyCatalog, "rotation", "select",
			fmt.Sprintf("no wallpapers found for mode %s", e.Mode), nil)
	}
	result.Image = image

	patchResult, err := e.Patcher.Patch(e.Settings.ConfigFile, image)
	result.Patch = patchResult
	if err != nil {
		return result, err
	}

	switch {
	case patchResult.Matched == 0:
		logging.WarnWithContext(logger, "config has no image_path line; file rewritten unchanged", "image_path_missing",
			logging.String("config", e.Settings.ConfigFile),
			logging.String(logging.FieldErrorHint, fmt.Sprintf("add a line starting with %q", patcher.Prefix)),
		)
	case patchResult.Matched > 1:
		logging.WarnWithContext(logger, "config has several image_path lines; all rewritten", "image_path_multiple",
			logging.String("config", e.Settings.ConfigFile),
			logging.Int("matched", patchResult.Matched),
			logging.String(logging.FieldErrorHint, "keep a single image_path line in the wezterm config"),
		)
	}
	logger.Info("wallpaper rotated",
		logging.String(logging.FieldEventType, "wallpaper_rotated"),
		logging.String("image", image),
		logging.String("mode", e.Mode.String()),
		logging.Int("candidates", result.Candidates),
		logging.Int("replaced", patchResult.Replaced),
	)
	if e.Out != nil {
		fmt.Fprintf(e.Out, "Updated config with new image: %s\n", patchResult.Line)
	}
	return result, nil
}

// RunOnce performs one cycle. An empty pool is reported on ErrOut and is not
// an error.
func (e *Engine) RunOnce(ctx context.Context) (Result, error) {
	result, err := e.Rotate(ctx)
	if errors.Is(err, failure.ErrEmptyCatalog) {
		e.reportEmpty(ctx, err)
		return result, nil
	}
	return result, err
}

// cycle runs one loop iteration, logging instead of returning errors.
func (e *Engine) cycle(ctx context.Context) {
	_, err := e.Rotate(ctx)
	switch {
	case err == nil:
	case errors.Is(err, failure.ErrEmptyCatalog):
		e.reportEmpty(ctx, err)
	case errors.Is(err, context.Canceled):
	default:
		e.logger(ctx).Error("rotation failed",
			logging.String(logging.FieldEventType, "rotation_failed"),
			logging.Error(err),
			logging.ErrorKind(err),
		)
	}
}

func (e *Engine) reportEmpty(ctx context.Context, err error) {
	logging.WarnWithContext(e.logger(ctx), "no wallpaper candidates", "catalog_empty",
		logging.Error(err),
		logging.ErrorKind(err),
		logging.String(logging.FieldErrorHint, "check the images and animations directories in the settings file"),
	)
	if e.ErrOut != nil {
		fmt.Fprintln(e.ErrOut, NoSelectionMessage)
	}
}

func (e *Engine) build(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	candidates, err := catalog.Build(e.Settings, e.Mode)
	if err != nil {
		return nil, err
	}
	e.logger(ctx).Debug("catalog built",
		logging.String("mode", e.Mode.String()),
		logging.Int("candidates", len(candidates)),
	)
	return candidates, nil
}

func (e *Engine) logger(ctx context.Context) *slog.Logger {
	return logging.WithContext(ctx, logging.NewComponentLogger(e.Logger, "rotation"))
}
