package app

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/rep/gateway"
	"github.com/ayoisaiah/rep/history"
	"github.com/ayoisaiah/rep/internal/apperr"
	"github.com/ayoisaiah/rep/internal/config"
	"github.com/ayoisaiah/rep/internal/models"
	"github.com/ayoisaiah/rep/internal/ui"
	"github.com/ayoisaiah/rep/progress"
	"github.com/ayoisaiah/rep/routine"
	"github.com/ayoisaiah/rep/workout"
)

const (
	envNoColor    = "NO_COLOR"
	envRepNoColor = "REP_NO_COLOR"
)

var (
	errRoutineRequired = &apperr.Error{
		Message: "please specify a routine by name",
	}

	errExerciseRequired = &apperr.Error{
		Message: "please specify an exercise by name",
	}

	errNoSuchExercise = &apperr.Error{
		Message: "no exercise matches %q in this routine",
	}
)

// firstNonEmptyString returns its first non-empty argument, or "" if
// all arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// initConfig loads the YAML config and applies the display theme.
func initConfig() (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// newGateway connects to the row store configured in the config file.
func newGateway(cfg *config.Config) (gateway.Gateway, error) {
	if cfg.Gateway.Mode == config.ModeRemote {
		return gateway.NewREST(gateway.RESTConfig{
			URL:    cfg.Gateway.URL,
			APIKey: cfg.Gateway.APIKey,
			Token:  cfg.Gateway.Token,
		}), nil
	}

	return gateway.NewBolt(config.DBFilePath())
}

// storeHelper connects to the gateway and loads the routine cache.
func storeHelper(
	ctx *cli.Context,
) (*routine.Store, gateway.Gateway, *config.Config, error) {
	cfg, err := initConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	gw, err := newGateway(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	store := routine.NewStore(gw)

	err = store.Load(ctx.Context)
	if err != nil {
		_ = gw.Close()
		return nil, nil, nil, err
	}

	return store, gw, cfg, nil
}

// routineHelper resolves the routine named by the first command-line
// argument.
func routineHelper(
	ctx *cli.Context,
	store *routine.Store,
) (models.Routine, error) {
	name := strings.TrimSpace(ctx.Args().First())
	if name == "" {
		return models.Routine{}, errRoutineRequired
	}

	return store.Find(name)
}

// exerciseHelper resolves an exercise within a routine by name or id.
func exerciseHelper(
	r models.Routine,
	q string,
) (models.Exercise, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return models.Exercise{}, errExerciseRequired
	}

	if ex := r.ExerciseByID(q); ex != nil {
		return *ex, nil
	}

	for i := range r.Exercises {
		if strings.EqualFold(r.Exercises[i].Name, q) {
			return r.Exercises[i], nil
		}
	}

	return models.Exercise{}, errNoSuchExercise.Fmt(q)
}

// runSessionCmd executes the configured post-workout command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

// defaultAction lists all routines.
func defaultAction(ctx *cli.Context) error {
	store, gw, _, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = gw.Close()
	}()

	return listRoutines(store.List())
}

// addAction handles the add command which creates a new routine.
func addAction(ctx *cli.Context) error {
	store, gw, _, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = gw.Close()
	}()

	r := models.Routine{
		Name: strings.TrimSpace(ctx.Args().First()),
	}

	err = routineForm(&r)
	if err != nil {
		return err
	}

	err = store.Add(ctx.Context, r)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("routine %q created", r.Name)

	return nil
}

// editAction handles the edit command which amends a routine and its
// exercises.
func editAction(ctx *cli.Context) error {
	store, gw, _, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = gw.Close()
	}()

	r, err := routineHelper(ctx, store)
	if err != nil {
		return err
	}

	err = routineForm(&r)
	if err != nil {
		return err
	}

	err = store.Update(ctx.Context, r)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("routine %q updated", r.Name)

	return nil
}

// deleteAction handles the delete command which removes a routine and
// everything logged against it.
func deleteAction(ctx *cli.Context) error {
	store, gw, _, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = gw.Close()
	}()

	r, err := routineHelper(ctx, store)
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		ok, err := confirmDelete(r.Name)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}
	}

	err = store.Delete(ctx.Context, r.ID)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("routine %q deleted", r.Name)

	return nil
}

// showAction handles the show command which prints the exercises of a
// routine.
func showAction(ctx *cli.Context) error {
	store, gw, _, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = gw.Close()
	}()

	r, err := routineHelper(ctx, store)
	if err != nil {
		return err
	}

	showRoutine(r)

	return nil
}

// startAction handles the start command which runs an interactive
// workout session.
func startAction(ctx *cli.Context) error {
	store, gw, cfg, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = gw.Close()
	}()

	r, err := routineHelper(ctx, store)
	if err != nil {
		return err
	}

	w, err := workout.New(r, workout.NewRecorder(gw), cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(w)

	_, err = p.Run()
	if err != nil {
		return err
	}

	if w.Engine().State() != workout.StateCompleted {
		return nil
	}

	if cfg.Notification.Enabled {
		_ = beeep.Notify(
			"Workout complete",
			fmt.Sprintf("%s is done. Well done!", r.Name),
			"",
		)
	}

	return runSessionCmd(cfg.Workout.SessionCmd)
}

// historyHelper resolves the routine/exercise pair shared by the
// history and progress commands.
func historyHelper(
	ctx *cli.Context,
	store *routine.Store,
) (models.Routine, models.Exercise, error) {
	r, err := routineHelper(ctx, store)
	if err != nil {
		return models.Routine{}, models.Exercise{}, err
	}

	ex, err := exerciseHelper(r, ctx.Args().Get(1))
	if err != nil {
		return models.Routine{}, models.Exercise{}, err
	}

	return r, ex, nil
}

// historyAction handles the history command which lists or amends
// logged sets.
func historyAction(ctx *cli.Context) error {
	store, gw, cfg, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = gw.Close()
	}()

	r, ex, err := historyHelper(ctx, store)
	if err != nil {
		return err
	}

	h := history.New(gw, r, ex, config.Filter(ctx))
	h.TwentyFourHour = cfg.Display.TwentyFourHour

	switch {
	case ctx.Bool("delete"):
		return h.Delete(ctx.Context)
	case ctx.Bool("edit"):
		return h.Edit(ctx.Context)
	case ctx.Bool("records"):
		return h.Records(ctx.Context, config.Stdout)
	}

	return h.List(ctx.Context, config.Stdout)
}

// progressAction handles the progress command which charts training
// volume over time.
func progressAction(ctx *cli.Context) error {
	store, gw, _, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = gw.Close()
	}()

	r, ex, err := historyHelper(ctx, store)
	if err != nil {
		return err
	}

	report := progress.NewReport(gw, r, ex, config.Filter(ctx))

	return report.Show(ctx.Context, config.Stdout)
}

// editConfigAction handles the edit-config command which opens the
// rep config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/rep/releases/%s\n",
			c.App.Version,
		)
	}

	config.InitLogger(ctx.Bool("verbose"))

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if REP_NO_COLOR is set
	if _, exists := os.LookupEnv(envRepNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
