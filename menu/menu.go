// SPDX-License-Identifier: MIT

// Package menu runs the interactive operation loop: pick a metric, see the
// ranking, repeat until Quit.
package menu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/render"
)

// Choice is one menu entry.
type Choice string

// Menu entries in display order.
const (
	ChoiceDegree      Choice = "degree"
	ChoiceCloseness   Choice = "closeness"
	ChoiceBetweenness Choice = "betweenness"
	ChoiceSearch      Choice = "search"
	ChoiceQuit        Choice = "quit"
)

// Prompter asks the user for input. HuhPrompter is the terminal
// implementation; tests supply scripted ones.
type Prompter interface {
	// Choose returns the next menu entry.
	Choose(ctx context.Context) (Choice, error)
	// Target returns the node label to search for.
	Target(ctx context.Context) (int64, error)
}

// Engine is the subset of *analysis.Analyzer the menu drives.
type Engine interface {
	Degree(ctx context.Context) (*analysis.Ranking, error)
	Closeness(ctx context.Context) (*analysis.Ranking, error)
	Betweenness(ctx context.Context) (*analysis.Ranking, error)
	Search(target int64) (*analysis.SearchReport, error)
}

// Run loops until the user picks Quit, aborts the prompt or ctx ends.
// Failed operations are reported and the loop continues; only prompt errors
// end it.
func Run(ctx context.Context, eng Engine, out *render.Renderer, p Prompter, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	for {
		choice, err := p.Choose(ctx)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		log.Debug("menu choice", "choice", string(choice))

		if choice == ChoiceQuit {
			return nil
		}
		if err = dispatch(ctx, eng, out, p, choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn("menu operation failed", "choice", string(choice), "error", err)
			if perr := out.Error(err); perr != nil {
				return perr
			}
		}
	}
}

func dispatch(ctx context.Context, eng Engine, out *render.Renderer, p Prompter, choice Choice) error {
	var (
		rk  *analysis.Ranking
		err error
	)
	switch choice {
	case ChoiceDegree:
		rk, err = eng.Degree(ctx)
	case ChoiceCloseness:
		rk, err = eng.Closeness(ctx)
	case ChoiceBetweenness:
		rk, err = eng.Betweenness(ctx)
	case ChoiceSearch:
		target, terr := p.Target(ctx)
		if terr != nil {
			return terr
		}
		rep, serr := eng.Search(target)
		if serr != nil {
			return serr
		}
		return out.Search(rep, false)
	default:
		return fmt.Errorf("menu: unknown choice %q", choice)
	}
	if err != nil {
		return err
	}

	return out.Ranking(rk)
}

// HuhPrompter prompts on the terminal with huh forms.
type HuhPrompter struct {
	// Accessible switches huh to plain line prompts for screen readers.
	Accessible bool
}

// Choose shows the operation select.
func (h HuhPrompter) Choose(ctx context.Context) (Choice, error) {
	var choice Choice
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[Choice]().
			Title("Choose an operation").
			Options(
				huh.NewOption("Degree centrality", ChoiceDegree),
				huh.NewOption("Closeness centrality", ChoiceCloseness),
				huh.NewOption("Betweenness centrality", ChoiceBetweenness),
				huh.NewOption("Reachability search", ChoiceSearch),
				huh.NewOption("Quit", ChoiceQuit),
			).
			Value(&choice),
	)).WithAccessible(h.Accessible)

	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}

	return choice, nil
}

// Target asks for the node label to search for.
func (h HuhPrompter) Target(ctx context.Context) (int64, error) {
	var raw string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Target node").
			Value(&raw).
			Validate(func(s string) error {
				_, err := ParseLabel(s)
				return err
			}),
	)).WithAccessible(h.Accessible)

	if err := form.RunWithContext(ctx); err != nil {
		return 0, err
	}

	return ParseLabel(raw)
}

// ParseLabel parses a node label typed by the user.
func ParseLabel(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("menu: %q is not a node label", s)
	}

	return v, nil
}
