// Package console writes styled text to the terminal and reads user input.
//
// Regular output goes to Out; error lines go to Err. Colors come from lipgloss
// renderers bound to each writer, so redirected output carries no escape codes.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Console is a line-oriented terminal adapter.
type Console struct {
	out    io.Writer
	errOut io.Writer
	in     *bufio.Reader
	styles styles
}

// New creates a Console over the given streams using DefaultStyles.
func New(out, errOut io.Writer, in io.Reader) *Console {
	return NewWithStyles(out, errOut, in, DefaultStyles())
}

// NewWithStyles creates a Console with a custom palette.
func NewWithStyles(out, errOut io.Writer, in io.Reader, cfg *StyleConfig) *Console {
	if in == nil {
		in = strings.NewReader("")
	}
	return &Console{
		out:    out,
		errOut: errOut,
		in:     bufio.NewReader(in),
		styles: cfg.build(lipgloss.NewRenderer(out), lipgloss.NewRenderer(errOut)),
	}
}

// Stdio returns a Console bound to the process streams.
func Stdio() *Console {
	return New(os.Stdout, os.Stderr, os.Stdin)
}

func (c *Console) Write(text string) {
	fmt.Fprint(c.out, text)
}

func (c *Console) WriteLine(text string) {
	fmt.Fprintln(c.out, text)
}

// WriteError writes text in the error color without a trailing newline.
func (c *Console) WriteError(text string) {
	fmt.Fprint(c.errOut, paint(c.styles.err, text))
}

func (c *Console) WriteErrorLine(text string) {
	fmt.Fprintln(c.errOut, paint(c.styles.err, text))
}

func (c *Console) WriteWarningLine(text string) {
	fmt.Fprintln(c.out, paint(c.styles.warning, text))
}

func (c *Console) WriteInfoLine(text string) {
	fmt.Fprintln(c.out, paint(c.styles.info, text))
}

// ReadLine reads one line of input without its line ending.
// ok is false once the input is exhausted.
func (c *Console) ReadLine() (line string, ok bool) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// Clear erases the screen and homes the cursor.
func (c *Console) Clear() {
	fmt.Fprint(c.out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
}

// paint styles each line separately so lipgloss never pads lines to a common width.
func paint(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
