package workout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/rep/internal/models"
	"github.com/ayoisaiah/rep/internal/timeutil"
)

type style struct {
	base      lipgloss.Style
	title     lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	notice    lipgloss.Style
}

// newStyle derives the screen styles from the routine's colours.
func newStyle(r models.Routine) style {
	title := lipgloss.NewStyle().Bold(true)

	if r.Color != "" {
		title = title.Foreground(lipgloss.Color(r.Color))
	}

	if r.BgColor != "" {
		title = title.Background(lipgloss.Color(r.BgColor)).Padding(0, 1)
	}

	return style{
		base:      lipgloss.NewStyle().Padding(1, padding),
		title:     title,
		main:      lipgloss.NewStyle().Bold(true),
		secondary: lipgloss.NewStyle().Faint(true),
		hint:      lipgloss.NewStyle().Faint(true),
		notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (w *Workout) headerView() string {
	r := w.engine.Routine()

	header := w.style.title.SetString(
		r.Icon.Glyph() + " " + r.Name,
	).String()

	position := w.style.hint.SetString(fmt.Sprintf(
		"Exercise %d of %d",
		w.engine.CurrentIndex()+1,
		len(r.Exercises),
	)).String()

	return header + "  " + position
}

func (w *Workout) exerciseView() string {
	var s strings.Builder

	ex := w.engine.CurrentExercise()

	s.WriteString(w.style.main.SetString(ex.Name).String())

	upcoming := w.engine.UpcomingSetNumber()
	if upcoming > ex.TargetSets() {
		s.WriteString(
			"  " + w.style.secondary.SetString("all sets logged").String(),
		)
	} else {
		s.WriteString("  " + w.style.hint.SetString(fmt.Sprintf(
			"Set %d of %d", upcoming, ex.TargetSets(),
		)).String())
	}

	s.WriteString("\n\n")
	s.WriteString(w.style.secondary.SetString("Weight ").String())
	s.WriteString(w.weight.View())
	s.WriteString("   ")
	s.WriteString(w.style.secondary.SetString("Reps ").String())
	s.WriteString(w.reps.View())

	return s.String()
}

func (w *Workout) restView() string {
	var s strings.Builder

	s.WriteString(w.headerView())
	s.WriteString("\n\n")
	s.WriteString(w.style.secondary.SetString("Resting").String())
	s.WriteString("\n\n")
	s.WriteString(
		w.style.main.SetString(
			timeutil.FormatCountdown(w.rest.Remaining()),
		).String(),
	)
	s.WriteString("\n\n")
	s.WriteString(w.help.ShortHelpView([]key.Binding{
		defaultKeymap.skip,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (w *Workout) completedView() string {
	var s strings.Builder

	var volume float64
	for _, l := range w.engine.Logs() {
		volume += l.Volume()
	}

	s.WriteString(w.style.main.SetString("Workout complete!").String())
	s.WriteString("\n\n")
	s.WriteString(w.style.secondary.SetString(fmt.Sprintf(
		"%d sets logged, %.1f total volume",
		w.engine.TotalCompletedSets(),
		volume,
	)).String())
	s.WriteString("\n\n" + w.help.ShortHelpView([]key.Binding{
		defaultKeymap.complete,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (w *Workout) sessionView() string {
	var s strings.Builder

	s.WriteString(w.headerView())
	s.WriteString("\n\n")
	s.WriteString(w.exerciseView())

	if w.notice != "" {
		s.WriteString("\n\n" + w.style.notice.SetString(w.notice).String())
	}

	s.WriteString("\n\n")
	s.WriteString(w.progress.ViewAs(w.engine.Progress()))
	s.WriteString("\n\n" + w.help.ShortHelpView([]key.Binding{
		defaultKeymap.complete,
		defaultKeymap.field,
		defaultKeymap.next,
		defaultKeymap.prev,
		defaultKeymap.finish,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (w *Workout) View() string {
	if w.quitting {
		return ""
	}

	if w.engine.State() == StateCompleted {
		return w.style.base.Render(w.completedView())
	}

	if w.rest.Active() {
		return w.style.base.Render(w.restView())
	}

	return w.style.base.Render(w.sessionView())
}
