package workout

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/rep/internal/config"
	"github.com/ayoisaiah/rep/internal/models"
)

const (
	fieldWeight = iota
	fieldReps
)

const (
	padding  = 2
	maxWidth = 60
)

// Workout is the terminal screen for an active session. All state
// transitions go through the engine; the model only translates key
// presses and renders.
type Workout struct {
	engine   *Engine
	Opts     *config.Config
	rest     *RestTimer
	help     help.Model
	style    style
	notice   string
	weight   textinput.Model
	reps     textinput.Model
	progress progress.Model
	focused  int
	quitting bool
}

// New starts a session for the given routine and prepares the screen
// for its first exercise.
func New(
	r models.Routine,
	rec Recorder,
	cfg *config.Config,
) (*Workout, error) {
	engine, err := NewEngine(r, rec)
	if err != nil {
		return nil, err
	}

	weight := textinput.New()
	weight.Placeholder = "0"
	weight.Prompt = ""
	weight.CharLimit = 7
	weight.Width = 8
	weight.Focus()

	reps := textinput.New()
	reps.Placeholder = "0"
	reps.Prompt = ""
	reps.CharLimit = 4
	reps.Width = 8

	w := &Workout{
		engine:   engine,
		Opts:     cfg,
		rest:     NewRestTimer(int(cfg.Workout.RestDuration.Seconds())),
		weight:   weight,
		reps:     reps,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		style:    newStyle(r),
	}

	w.syncInputs()

	return w, nil
}

// Engine exposes the underlying session state machine.
func (w *Workout) Engine() *Engine {
	return w.engine
}

func (w *Workout) Init() tea.Cmd {
	return textinput.Blink
}

// syncInputs copies the engine's input buffer into the text fields.
func (w *Workout) syncInputs() {
	buf := w.engine.Buffer()

	w.weight.SetValue(buf.Weight)
	w.reps.SetValue(buf.Reps)
}

// syncBuffer copies the text fields into the engine's input buffer.
func (w *Workout) syncBuffer() {
	w.engine.SetBuffer(w.weight.Value(), w.reps.Value())
}

func (w *Workout) focusField(field int) {
	w.focused = field

	if field == fieldWeight {
		w.weight.Focus()
		w.reps.Blur()

		return
	}

	w.reps.Focus()
	w.weight.Blur()
}
