// Package app wires the buffer, view, motion registry, and terminal
// front end into a runnable application.
package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/countjump/internal/bell"
	"github.com/dshills/countjump/internal/config"
	"github.com/dshills/countjump/internal/engine/buffer"
	"github.com/dshills/countjump/internal/engine/view"
	"github.com/dshills/countjump/internal/jump"
	"github.com/dshills/countjump/internal/motion"
	"github.com/dshills/countjump/internal/plugin/lua"
	"github.com/dshills/countjump/internal/term"
)

// Options configures the application.
type Options struct {
	// Path is the file to open.
	Path string

	// ConfigPath is the TOML jump definition file. Missing files are
	// ignored.
	ConfigPath string

	// Scripts are Lua files that may register predicates.
	Scripts []string

	// AudioBell plays a tone instead of the terminal bell.
	AudioBell bool

	// LogLevel is the minimum level written to LogOutput.
	LogLevel LogLevel

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer
}

// bellRelay forwards rings to the active ringer. The jumper is built
// before the terminal exists, so the terminal bell attaches later.
type bellRelay struct {
	r bell.Ringer
}

func (b *bellRelay) Ring() {
	if b.r != nil {
		b.r.Ring()
	}
}

// Application is the interactive jump demo over a single file.
type Application struct {
	opts     Options
	logger   *Logger
	view     *view.View
	screen   *term.Screen
	host     *lua.Host
	jumper   *jump.Jumper
	registry *motion.Registry
	bell     *bellRelay

	count      motion.CountState
	pending    string
	objPending rune
}

// New loads the file, scripts, and jump definitions described by opts.
func New(opts Options) (*Application, error) {
	logger := NewLogger(LoggerConfig{
		Level:  opts.LogLevel,
		Output: opts.LogOutput,
		Prefix: "countjump",
	})

	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return nil, NewOperationError("open", opts.Path, err)
	}

	a := &Application{
		opts:     opts,
		logger:   logger,
		view:     view.New(buffer.New(string(data))),
		host:     lua.NewHost(),
		registry: motion.NewRegistry(),
		bell:     &bellRelay{},
	}
	if opts.AudioBell {
		a.bell.r = bell.NewAudio()
	}
	a.host.OnError = func(name string, err error) {
		logger.WithComponent("lua").Error("predicate %s: %v", name, err)
	}
	a.jumper = jump.New(a.bell)

	for _, script := range opts.Scripts {
		if err := a.host.LoadFile(script); err != nil {
			return nil, NewOperationError("script", script, err)
		}
	}

	defs := []*motion.Definition{motion.Paragraphs()}
	loaded, err := config.LoadWith(opts.ConfigPath, a.host.Predicate)
	if err != nil {
		return nil, NewOperationError("config", opts.ConfigPath, err)
	}
	defs = append(defs, loaded...)

	for _, def := range defs {
		if err := a.register(def); err != nil {
			return nil, NewOperationError("config", opts.ConfigPath, err)
		}
	}

	logger.Info("loaded %s: %d lines, %d motions",
		filepath.Base(opts.Path), a.view.Buffer().LineCount(), len(a.registry.MotionKeys()))
	return a, nil
}

// register adds a definition's motions and text object to the registry.
func (a *Application) register(def *motion.Definition) error {
	for _, m := range def.Motions(a.jumper) {
		if err := a.registry.RegisterMotion(m); err != nil {
			return err
		}
	}
	if obj := def.Object(a.jumper, a.bell); obj != nil {
		if err := a.registry.RegisterObject(obj); err != nil {
			return err
		}
	}
	return nil
}

// View returns the application's view.
func (a *Application) View() *view.View {
	return a.view
}

// Run drives the terminal event loop until quit.
func (a *Application) Run() error {
	screen, err := term.New()
	if err != nil {
		return NewOperationError("terminal", "", err)
	}
	if err := screen.Init(); err != nil {
		return NewOperationError("terminal", "", err)
	}
	defer screen.Fini()

	a.screen = screen
	if a.bell.r == nil {
		a.bell.r = screen
	}
	a.render()

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if err := a.handleKey(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		case *tcell.EventResize:
		case nil:
			return nil
		}
		a.render()
	}
}

// Close releases the script host.
func (a *Application) Close() {
	a.host.Close()
}

// Logger returns the application logger.
func (a *Application) Logger() *Logger {
	return a.logger
}
