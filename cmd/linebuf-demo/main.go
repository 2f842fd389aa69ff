// Command linebuf-demo is a single-line editor built on package buffer.
//
// Interactive mode edits one line (alt+enter inserts a newline) and prints
// it on enter. With -layout, stdin is wrapped into terminal rows instead.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"golang.org/x/text/encoding/charmap"

	"github.com/iw2rmb/linebuf"
	"github.com/iw2rmb/linebuf/buffer"
)

type config struct {
	prompt, cprompt string
	width           int
	cs              *charmap.Charmap
	historyLimit    int
	plain           bool
	layout          bool
	version         bool
	text            string
	logger          *slog.Logger
}

func parseFlags(args []string, stderr io.Writer) (config, func() error, error) {
	var cfg config
	var charset, logPath string
	noop := func() error { return nil }

	fs := flag.NewFlagSet("linebuf-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.prompt, "prompt", "> ", "prompt on the first row")
	fs.StringVar(&cfg.cprompt, "cprompt", "", "prompt on continuation rows")
	fs.StringVar(&charset, "charset", "", "terminal charset: latin1, latin9, cp1252, koi8r, cp437 (default utf-8)")
	fs.IntVar(&cfg.width, "width", 0, "terminal width in columns (0 detects or never wraps)")
	fs.IntVar(&cfg.historyLimit, "history", 0, "undo states to keep (0 for the default, negative disables)")
	fs.StringVar(&cfg.text, "text", "", "initial line content")
	fs.StringVar(&logPath, "log", "", "write buffer diagnostics to this file")
	fs.BoolVar(&cfg.layout, "layout", false, "lay stdin out into rows and exit")
	fs.BoolVar(&cfg.plain, "plain", false, "disable colors")
	fs.BoolVar(&cfg.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return cfg, noop, err
	}

	cs, err := lookupCharset(charset)
	if err != nil {
		return cfg, noop, err
	}
	cfg.cs = cs

	if logPath == "" {
		return cfg, noop, nil
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return cfg, noop, fmt.Errorf("open log: %w", err)
	}
	cfg.logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return cfg, f.Close, nil
}

// terminalWidth returns the width of w if it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// runLayout wraps stdin into rows, one output line per row with its prompt.
func runLayout(cfg config, stdin io.Reader, stdout io.Writer) error {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	data = bytes.TrimSuffix(data, []byte("\n"))

	b := buffer.New("", buffer.Options{Logger: cfg.logger})
	b.InsertLocale(0, data, cfg.cs)

	l := buffer.Layout{
		TermWidth:       cfg.width,
		PromptWidth:     buffer.StringWidth(cfg.prompt),
		ContPromptWidth: buffer.StringWidth(cfg.cprompt),
	}
	s := b.Bytes()
	var werr error
	b.ForEachRow(l, func(r buffer.Row) bool {
		p := cfg.cprompt
		if r.Index == 0 {
			p = cfg.prompt
		}
		_, werr = fmt.Fprintf(stdout, "%s%s\n", p, s[r.Start:r.Start+r.Len])
		return werr != nil
	})
	if werr != nil {
		return fmt.Errorf("write rows: %w", werr)
	}
	return nil
}

func runInteractive(cfg config, stdin io.Reader, stdout io.Writer) error {
	r := lipgloss.NewRenderer(stdout)
	if cfg.plain {
		r.SetColorProfile(termenv.Ascii)
	}

	b := buffer.New("", buffer.Options{Logger: cfg.logger})
	b.InsertLocale(0, []byte(cfg.text), cfg.cs)

	p := tea.NewProgram(newModel(b, cfg, newStyle(r)), tea.WithInput(stdin), tea.WithOutput(stdout))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	m, ok := final.(model)
	if !ok || !m.accepted {
		return nil
	}
	if _, err := stdout.Write(append(m.line(), '\n')); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, closeLog, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.version {
		_, err := fmt.Fprintln(stdout, linebuf.Tag())
		return err
	}
	if cfg.width == 0 {
		cfg.width = terminalWidth(stdout)
	}
	if cfg.layout {
		return runLayout(cfg, stdin, stdout)
	}
	return runInteractive(cfg, stdin, stdout)
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
