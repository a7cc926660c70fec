package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	tessera "github.com/tessera-editor/tessera"
	"github.com/tessera-editor/tessera/buffer"
	"github.com/tessera-editor/tessera/editor"
)

func main() {
	app := cli.NewApp()
	app.Name = "tessera"
	app.Usage = "piece-table text editor for the terminal"
	app.Version = tessera.Version()
	app.ArgsUsage = "[file]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log",
			Usage: "append a debug log of every edit to `FILE`",
		},
		cli.BoolFlag{
			Name:  "readonly, r",
			Usage: "open the file without allowing edits",
		},
		cli.BoolFlag{
			Name:  "nonum",
			Usage: "hide line numbers",
		},
		cli.IntFlag{
			Name:  "tabwidth",
			Value: 4,
			Usage: "display width of a tab stop",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "tessera:", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	log := logrus.New()
	log.SetOutput(io.Discard)
	if path := ctx.String("log"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetLevel(logrus.DebugLevel)
	}

	path := ctx.Args().First()
	text := ""
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// New file; saved on ctrl+s.
		case err != nil:
			return err
		default:
			text = string(data)
		}
	}

	m := newModel(appConfig{
		path:     path,
		text:     text,
		readonly: ctx.Bool("readonly"),
		lineNums: !ctx.Bool("nonum"),
		tabWidth: ctx.Int("tabwidth"),
		log:      log,
	})
	log.WithFields(logrus.Fields{
		"path":     path,
		"bytes":    len(text),
		"readonly": m.readonly,
	}).Debug("open")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

type appConfig struct {
	path     string
	text     string
	readonly bool
	lineNums bool
	tabWidth int
	log      *logrus.Logger
}

type model struct {
	editor   editor.Model
	keys     editor.KeyMap
	path     string
	readonly bool
	log      *logrus.Logger

	width, height int
	savedVersion  uint64
	status        string

	barStyle lipgloss.Style
}

func newModel(cfg appConfig) model {
	keys := editor.DefaultKeyMap()
	ed := editor.New(editor.Config{
		Text:         cfg.text,
		ShowLineNums: cfg.lineNums,
		TabWidth:     cfg.tabWidth,
		Style:        editor.DefaultStyle(),
		KeyMap:       keys,
		OnChange: func(e editor.ChangeEvent) {
			cfg.log.WithFields(logrus.Fields{
				"version": e.Version,
				"kind":    e.Edit.Kind.String(),
				"off":     e.Edit.Off,
				"len":     e.Edit.Len,
			}).Debug("edit")
		},
	})

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("250"))
	if termenv.HasDarkBackground() {
		bar = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238"))
	}

	return model{
		editor:   ed,
		keys:     keys,
		path:     cfg.path,
		readonly: cfg.readonly,
		log:      cfg.log,
		barStyle: bar,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor = m.editor.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q", "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			m.save()
			return m, nil
		}
		if m.readonly && m.editsBuffer(msg) {
			m.status = "read-only"
			return m, nil
		}
		m.status = ""
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// editsBuffer reports whether the key would mutate the document.
func (m model) editsBuffer(msg tea.KeyMsg) bool {
	if key.Matches(msg, m.keys.Backspace, m.keys.Delete, m.keys.Enter, m.keys.Tab) {
		return true
	}
	return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
}

func (m *model) save() {
	if m.readonly {
		m.status = "read-only"
		return
	}
	if m.path == "" {
		m.status = "no file name"
		return
	}

	buf := m.editor.Buffer()
	if err := writeFile(m.path, buf); err != nil {
		m.log.WithError(err).Error("save failed")
		m.status = "save failed: " + err.Error()
		return
	}
	m.savedVersion = buf.Version()
	m.status = fmt.Sprintf("wrote %d bytes", buf.Len())
	m.log.WithFields(logrus.Fields{"path": m.path, "bytes": buf.Len()}).Debug("save")
}

// writeFile materializes the document into a temporary file next to path
// and renames it into place, so a failed save never truncates the target.
func writeFile(path string, buf *buffer.Buffer) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tessera-*")
	if err != nil {
		return err
	}
	if _, err := buf.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (m model) View() string {
	return m.editor.View() + "\n" + m.statusLine()
}

func (m model) statusLine() string {
	name := m.path
	if name == "" {
		name = "[no file]"
	}
	if m.readonly {
		name += " [ro]"
	} else if m.editor.Buffer().Version() != m.savedVersion {
		name += " *"
	}

	row, _ := m.editor.Cursor()
	pos := fmt.Sprintf("%d:%d", row+1, m.editor.VisualCol()+1)

	left := " " + name
	if m.status != "" {
		left += "  " + m.status
	}
	right := pos + " "

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	line := left + strings.Repeat(" ", pad) + right
	return m.barStyle.Render(line)
}
