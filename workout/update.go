package workout

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

// restTickMsg fires once per second while the rest countdown runs.
type restTickMsg time.Time

func restTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return restTickMsg(t)
	})
}

// handleRestTick advances the rest countdown and notifies once it
// expires.
func (w *Workout) handleRestTick() (tea.Model, tea.Cmd) {
	if !w.rest.Active() {
		return w, nil
	}

	if w.rest.Tick() {
		w.notifyRestOver()

		return w, textinput.Blink
	}

	return w, restTick()
}

// handleCompleteSet logs the current input as a set. The error notice
// is shown once and cleared on the next key press.
func (w *Workout) handleCompleteSet() (tea.Model, tea.Cmd) {
	w.syncBuffer()

	err := w.engine.CompleteSet(context.Background())
	if err != nil {
		w.notice = err.Error()

		return w, nil
	}

	w.syncInputs()
	w.focusField(fieldWeight)

	if w.engine.State() == StateCompleted {
		return w, nil
	}

	w.rest.Start()

	return w, restTick()
}

func (w *Workout) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slog.Debug(spew.Sdump(msg))

	w.notice = ""

	if key.Matches(msg, defaultKeymap.quit) {
		w.quitting = true

		return w, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	if w.engine.State() == StateCompleted {
		if key.Matches(msg, defaultKeymap.complete) {
			w.quitting = true

			return w, tea.Batch(tea.ClearScreen, tea.Quit)
		}

		return w, nil
	}

	if w.rest.Active() {
		if key.Matches(msg, defaultKeymap.skip) {
			w.rest.Skip()

			return w, textinput.Blink
		}

		return w, nil
	}

	switch {
	case key.Matches(msg, defaultKeymap.complete):
		return w.handleCompleteSet()

	case key.Matches(msg, defaultKeymap.field):
		if w.focused == fieldWeight {
			w.focusField(fieldReps)
		} else {
			w.focusField(fieldWeight)
		}

		return w, nil

	case key.Matches(msg, defaultKeymap.next):
		w.syncBuffer()
		w.engine.NavigateNext()
		w.syncInputs()

		return w, nil

	case key.Matches(msg, defaultKeymap.prev):
		w.syncBuffer()
		w.engine.NavigatePrevious()
		w.syncInputs()

		return w, nil

	case key.Matches(msg, defaultKeymap.finish):
		if err := w.engine.Finish(); err != nil {
			w.notice = err.Error()
		}

		return w, nil
	}

	var cmd tea.Cmd

	if w.focused == fieldWeight {
		w.weight, cmd = w.weight.Update(msg)
	} else {
		w.reps, cmd = w.reps.Update(msg)
	}

	return w, cmd
}

func (w *Workout) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case restTickMsg:
		return w.handleRestTick()

	case tea.KeyMsg:
		return w.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		w.progress.Width = msg.Width - padding*2 - 4
		if w.progress.Width > maxWidth {
			w.progress.Width = maxWidth
		}

		return w, nil

	case progress.FrameMsg:
		var (
			progressModel tea.Model
			cmd           tea.Cmd
		)

		progressModel, cmd = w.progress.Update(msg)
		w.progress, _ = progressModel.(progress.Model)

		return w, cmd
	}

	return w, nil
}
