package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wehoop/logomaker/internal/render"
	"github.com/wehoop/logomaker/internal/teams"
)

// App is the generate-all driver: one render per team, in table order.
type App struct {
	Teams    []teams.Team
	Config   render.Config
	Render   render.Renderer
	Logger   Logger
	Report   *Reporter
	FailFast bool
	Preview  bool
}

// Summary lists what a run produced.
type Summary struct {
	Written []string
	Failed  []*RenderError
}

// New builds a fail-fast App that prints progress to out.
// The renderer is created lazily from cfg when Render is left nil.
func New(list []teams.Team, cfg render.Config, out io.Writer) *App {
	if out == nil {
		out = io.Discard
	}
	return &App{Teams: list, Config: cfg, Logger: NoopLogger{}, Report: NewReporter(out), FailFast: true}
}

func (app *App) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Report == nil {
		app.Report = NewReporter(io.Discard)
	}

	if err := teams.Validate(app.Teams); err != nil {
		return summary, fmt.Errorf("team table: %w", err)
	}
	if err := app.Config.Validate(); err != nil {
		return summary, &UsageError{Msg: err.Error()}
	}
	if err := os.MkdirAll(app.Config.OutputDir, 0o755); err != nil {
		app.Logger.Errorf("app", "create output directory %s: %v", app.Config.OutputDir, err)
		return summary, fmt.Errorf("create output directory: %w", err)
	}

	renderer := app.Render
	if renderer == nil {
		renderer = render.NewLogoRenderer(app.Config, app.Logger)
	}

	app.Logger.Infof("app", "generating %d logos at %dpx into %s", len(app.Teams), app.Config.Size, app.Config.OutputDir)
	app.Report.Header(app.Config.Size, app.Config.OutputDir)

	for _, team := range app.Teams {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		path, err := renderer.Render(team)
		if err != nil {
			renderErr := &RenderError{TeamID: team.ID, Err: err}
			summary.Failed = append(summary.Failed, renderErr)
			app.Logger.Errorf("app", "%v", renderErr)
			app.Report.Failed(team.ID, err)
			if app.FailFast {
				return summary, renderErr
			}
			continue
		}
		summary.Written = append(summary.Written, path)
		app.Report.Created(path)
	}

	app.Report.Done(len(summary.Written), len(summary.Failed))
	if len(summary.Failed) > 0 {
		errs := make([]error, 0, len(summary.Failed))
		for _, failed := range summary.Failed {
			errs = append(errs, failed)
		}
		return summary, fmt.Errorf("%d of %d logos failed: %w", len(summary.Failed), len(app.Teams), errors.Join(errs...))
	}

	if app.Preview && len(summary.Written) > 0 {
		previewPath := filepath.Join(app.Config.OutputDir, render.PreviewFilename)
		if err := render.WritePreviewSheet(summary.Written, previewPath); err != nil {
			app.Logger.Errorf("app", "preview sheet: %v", err)
			return summary, err
		}
		app.Report.Preview(previewPath)
	}
	app.Report.NextSteps(app.Config.OutputDir)
	return summary, nil
}
