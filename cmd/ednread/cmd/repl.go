package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/xiam/edn/internal/render"
	"github.com/xiam/edn/parser"
)

const (
	replBanner = "ednread interactive reader"
	replHint   = "Type :help for commands, :quit or Ctrl-D to exit."
	replHelp   = `Commands:
  :help   show this message
  :quit   leave the reader
Anything else is read as data. Unfinished forms continue on the next line.`
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read forms interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRepl(cmd)
		},
	}
}

func (a *app) runRepl(cmd *cobra.Command) error {
	w, errw := cmd.OutOrStdout(), cmd.ErrOrStderr()

	fmt.Fprintln(w, a.theme.Title(replBanner))
	fmt.Fprintln(w, a.theme.Muted(replHint))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := a.cfg.REPL.HistoryFile
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	stop := closeOnSignal(ln, os.Exit)
	defer stop()

	prompt := a.cfg.REPL.Prompt
	for {
		src, ok := a.readByParseProbe(ln, prompt, continuationPrompt(prompt))
		if !ok {
			fmt.Fprintln(w)
			return nil
		}

		switch strings.TrimSpace(src) {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":help":
			fmt.Fprintln(w, a.theme.Muted(replHelp))
			continue
		}

		a.evalSource(w, errw, src)
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readByParseProbe prompts until the collected lines either parse or fail
// for a reason other than running out of input.
func (a *app) readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if !a.incomplete(src) {
			return src, true
		}
	}
}

// incomplete reports whether src ends inside an open collection or tagged
// form.
func (a *app) incomplete(src string) bool {
	p := parser.New([]byte(src))
	p.SetOptions(a.cfg.ParserOptions())
	_, err := p.ParseAll()
	return errors.Is(err, parser.ErrUnexpectedEOF)
}

// evalSource reads every form of src and prints them, reporting errors
// without stopping the session.
func (a *app) evalSource(w, errw io.Writer, src string) {
	logger := a.logger.With("parse_id", uuid.NewString(), "source", "repl")

	p := parser.New([]byte(src))
	p.SetOptions(a.cfg.ParserOptions())

	nodes, err := p.ParseAll()
	if err != nil {
		logger.Debug("parse failed", "error", err)
		a.reportParseError(errw, err)
		return
	}
	logger.Debug("parsed", "forms", len(nodes))

	if err := render.Render(w, nodes, a.cfg.Output.Format); err != nil {
		fmt.Fprintln(errw, a.theme.Error(err.Error()))
	}
}

// closeOnSignal closes c and calls exit(130) when the process is interrupted.
// The returned function stops watching and waits for the watcher to return.
func closeOnSignal(c io.Closer, exit func(int)) (stop func()) {
	sigc := make(chan os.Signal, 1)
	done := make(chan struct{})
	finished := make(chan struct{})

	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		defer close(finished)
		select {
		case <-sigc:
			_ = c.Close()
			exit(130)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigc)
		close(done)
		<-finished
	}
}

func continuationPrompt(prompt string) string {
	n := len(strings.TrimRight(prompt, " "))
	if n < 1 {
		n = 1
	}
	return strings.Repeat(".", n) + " "
}
