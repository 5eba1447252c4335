// Package window runs Skyfaller in a desktop window with Ebitengine.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skyfaller/internal/config"
	"github.com/vovakirdan/skyfaller/internal/core"
	"github.com/vovakirdan/skyfaller/internal/games/skyfaller"
	"github.com/vovakirdan/skyfaller/internal/storage"
)

// Options tune a window session.
type Options struct {
	Player     string
	Difficulty string
	Logger     *log.Logger // nil discards
}

// App adapts a Skyfaller game to ebiten.Game.
type App struct {
	game       *skyfaller.Game
	renderer   *Renderer
	store      *storage.Store
	window     config.WindowConfig
	runtime    core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	state      core.GameState
	scoreSaved bool
}

// NewApp creates the window adapter. The game is reset with runtime and
// reads wall-clock time from then on.
func NewApp(game *skyfaller.Game, store *storage.Store, window config.WindowConfig, runtime core.RuntimeConfig, opts Options) *App {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	runtime.ScreenW, runtime.ScreenH = window.Width, window.Height

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.SetClock(core.NewSystemClock())
	game.Reset(runtime)

	return &App{
		game:     game,
		renderer: NewRenderer(window.Width, window.Height),
		store:    store,
		window:   window,
		runtime:  runtime,
		opts:     opts,
		logger:   logger,
		state:    game.State(),
	}
}

// pollInput reads the keyboard for this frame.
// Returns false when the player asked to quit.
func pollInput() (core.InputFrame, bool) {
	in := core.NewInputFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return in, false
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	return in, true
}

// Update advances the game by one tick.
func (a *App) Update() error {
	in, ok := pollInput()
	if !ok {
		return ebiten.Termination
	}
	a.step(in)
	return nil
}

// step runs one frame of input through the game.
func (a *App) step(in core.InputFrame) {
	if in.Has(core.ActionRestart) && a.state.GameOver {
		a.runtime.Seed = time.Now().UnixNano()
		a.game.Reset(a.runtime)
		a.state = a.game.State()
		a.scoreSaved = false
		return
	}

	a.state = a.game.Step(in).State
	if a.state.GameOver && !a.scoreSaved {
		a.saveRun()
		a.scoreSaved = true
	}
}

// saveRun records the finished run. A failing store never stops play.
func (a *App) saveRun() {
	if a.store == nil || a.state.Score <= 0 {
		return
	}

	s := a.game.Session()
	run := storage.Run{
		Player:     a.opts.Player,
		Score:      a.state.Score,
		Elapsed:    s.Elapsed(),
		Hits:       s.Hits(),
		Seed:       s.Seed(),
		Difficulty: a.opts.Difficulty,
	}
	if _, err := a.store.SaveRun(run); err != nil {
		a.logger.Warn("could not save run", "error", err)
		return
	}
	a.logger.Info("run saved", "player", run.Player, "score", run.Score)
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	a.renderer.Begin(b.Dx(), b.Dy())
	a.game.Render(a.renderer)
	a.renderer.Flush(screen)
}

// Layout keeps the logical surface at the configured window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.window.Width, a.window.Height
}

// Run opens the window and plays until it is closed.
func Run(game *skyfaller.Game, store *storage.Store, window config.WindowConfig, runtime core.RuntimeConfig, opts Options) error {
	app := NewApp(game, store, window, runtime, opts)

	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
