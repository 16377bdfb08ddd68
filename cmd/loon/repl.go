package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/loon-lang/loon/pkg/ioctx"
	"github.com/loon-lang/loon/pkg/loon"
)

// Styles
var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	welcomeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type replStyles struct {
	prompt, result, err, welcome, dim lipgloss.Style
}

func stylesFor(color bool) replStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return replStyles{prompt: plain, result: plain, err: plain, welcome: plain, dim: plain}
	}
	return replStyles{
		prompt:  promptStyle,
		result:  resultStyle,
		err:     errorStyle,
		welcome: welcomeStyle,
		dim:     dimStyle,
	}
}

type replState struct {
	config  loon.Config
	styles  replStyles
	history []string
}

func runREPL(ctx context.Context, config loon.Config) error {
	st := &replState{config: config, styles: stylesFor(config.Color)}
	stdout := ioctx.StdoutFromContext(ctx)

	fmt.Fprintln(stdout, st.styles.welcome.Render("loon "+version))
	fmt.Fprintln(stdout, st.styles.dim.Render("Type an expression, or :help for commands."))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(stdout, st.styles.prompt.Render(config.Prompt))
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		st.history = append(st.history, line)

		if strings.HasPrefix(line, ":") {
			if quit := runCommand(ctx, st, line); quit {
				return nil
			}
			continue
		}

		st.checkLine(ctx, line)
	}
}

func (st *replState) checkLine(ctx context.Context, line string) {
	stdout := ioctx.StdoutFromContext(ctx)

	report, err := loon.Check(ctx, line)
	if err != nil {
		fmt.Fprintln(stdout, st.styles.err.Render(err.Error()))
		return
	}

	if report.Len() == 0 {
		fmt.Fprintln(stdout, st.styles.dim.Render("ok (no variables)"))
		return
	}
	for _, l := range report.Lines(st.config.SortVars) {
		fmt.Fprintln(stdout, st.styles.result.Render(l))
	}
}
