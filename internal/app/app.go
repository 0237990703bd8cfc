package app

import (
	"fmt"
	"io"
	"log/slog"

	"mvpcalc/internal/calculator"
	"mvpcalc/internal/domain"
	"mvpcalc/internal/presenter"
)

type App struct {
	Config     Config
	Calculator domain.Calculator
	Log        *slog.Logger
}

// New builds the application from cfg. A nil logger discards output.
func New(cfg Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		Config:     cfg,
		Calculator: calculator.New(),
		Log:        log,
	}
}

// Presenter returns a presenter bound to view.
func (a *App) Presenter(view domain.View) domain.Presenter {
	return presenter.New(a.Calculator, view)
}

// Dispatch invokes the handler of p that corresponds to op.
func (a *App) Dispatch(p domain.Presenter, op domain.Operation) error {
	a.Log.Debug("dispatch", "op", op.String())

	var err error
	switch op {
	case domain.Add:
		err = p.OnPlusClicked()
	case domain.Subtract:
		err = p.OnMinusClicked()
	case domain.Multiply:
		err = p.OnMultiplyClicked()
	case domain.Divide:
		err = p.OnDivideClicked()
	default:
		return fmt.Errorf("%w %q", domain.ErrUnknownOperation, op.String())
	}
	if err != nil {
		a.Log.Debug("dispatch failed", "op", op.String(), "err", err)
	}
	return err
}
