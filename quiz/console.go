// SPDX-License-Identifier: GPL-3.0-only

package quiz

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"dialcodes-server/commons/dialcode"
	"dialcodes-server/commons/matcher"

	"github.com/charmbracelet/lipgloss"
)

type consoleStyles struct {
	title   lipgloss.Style
	prompt  lipgloss.Style
	correct lipgloss.Style
	wrong   lipgloss.Style
	muted   lipgloss.Style
}

func newConsoleStyles(out io.Writer) consoleStyles {
	r := lipgloss.NewRenderer(out)
	return consoleStyles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		prompt:  r.NewStyle().Bold(true),
		correct: r.NewStyle().Foreground(lipgloss.Color("10")),
		wrong:   r.NewStyle().Foreground(lipgloss.Color("9")),
		muted:   r.NewStyle().Faint(true),
	}
}

// Score is the outcome of a console session.
type Score struct {
	Correct int
	Asked   int
	Rounds  int
	Stopped bool
}

// Console runs a question-and-answer session over a line-oriented terminal.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	picker  *Picker
	matcher AnswerMatcher
	styles  consoleStyles
}

func NewConsole(in io.Reader, out io.Writer, picker *Picker, m AnswerMatcher) *Console {
	if m == nil {
		m = (*matcher.Matcher)(nil)
	}
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		picker:  picker,
		matcher: m,
		styles:  newConsoleStyles(out),
	}
}

// Run asks up to rounds questions. Typing q, quit or exit stops the
// session early, as does the end of input.
func (c *Console) Run(idx *dialcode.Index, rounds int, filter Filter) (Score, error) {
	score := Score{Rounds: rounds}
	ds := idx.Dataset()

	fmt.Fprintln(c.out, c.styles.title.Render(fmt.Sprintf("=== %s dial code quiz ===", ds.Country)))
	fmt.Fprintln(c.out, c.styles.muted.Render("Type 'q' to quit at any time."))
	fmt.Fprintln(c.out)

	for score.Asked < rounds {
		q, err := c.picker.Pick(idx, filter)
		if err != nil {
			return score, err
		}

		c.ask(q, ds.CountryCode)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return score, fmt.Errorf("read answer: %w", err)
			}
			score.Stopped = true
			break
		}
		guess := c.in.Text()
		if isQuit(guess) {
			fmt.Fprintln(c.out, c.styles.muted.Render("Stopping quiz..."))
			score.Stopped = true
			break
		}

		score.Asked++
		if c.answer(q, guess) {
			score.Correct++
		}
	}

	fmt.Fprintf(c.out, "\n%s\n", c.styles.title.Render(
		fmt.Sprintf("Done! You scored %d of %d.", score.Correct, score.Asked)))
	return score, nil
}

func (c *Console) ask(q Question, countryCode string) {
	prefix := strings.TrimSpace(countryCode + " " + q.DialCode)
	if q.Kind == KindCity {
		fmt.Fprintln(c.out, c.styles.prompt.Render(fmt.Sprintf("Which city uses %s?", prefix)))
	} else {
		fmt.Fprintln(c.out, c.styles.prompt.Render(fmt.Sprintf("Which region uses %s?", prefix)))
	}
	fmt.Fprint(c.out, "> ")
}

func (c *Console) answer(q Question, guess string) bool {
	expected := q.Regions
	if q.Kind == KindCity {
		expected = q.PrimaryCities
	}

	if strings.TrimSpace(guess) == "" {
		fmt.Fprintln(c.out, c.styles.wrong.Render("No answer."))
		fmt.Fprintf(c.out, "Answer: %s\n\n", strings.Join(expected, ", "))
		return false
	}

	ok, on := Grade(q, guess, c.matcher)
	if !ok {
		fmt.Fprintln(c.out, c.styles.wrong.Render("Wrong."))
		fmt.Fprintf(c.out, "Answer: %s\n\n", strings.Join(expected, ", "))
		return false
	}

	fmt.Fprintln(c.out, c.styles.correct.Render("Correct!"))
	if q.Kind == KindRegion && len(q.Regions) > 0 && len(q.PrimaryCities) > 0 {
		if on == KindCity {
			fmt.Fprintf(c.out, "(%s is the main city of %s)\n", q.PrimaryCities[0], q.Regions[0])
		} else {
			fmt.Fprintf(c.out, "(%s is in %s)\n", q.PrimaryCities[0], q.Regions[0])
		}
	}
	fmt.Fprintln(c.out)
	return true
}

func isQuit(input string) bool {
	switch matcher.Normalize(input) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
