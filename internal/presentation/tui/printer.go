package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Printer writes run progress, colored when the destination supports it.
type Printer struct {
	out *termenv.Output
}

// NewPrinter returns a Printer writing to w. Colors are used only when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	profile := termenv.Ascii
	if IsTerminal(w) {
		profile = termenv.EnvColorProfile()
	}
	return NewPrinterWithProfile(w, profile)
}

// NewPrinterWithProfile returns a Printer with a fixed color profile.
func NewPrinterWithProfile(w io.Writer, profile termenv.Profile) *Printer {
	return &Printer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Step prints a successful step message.
func (p *Printer) Step(msg string) {
	mark := p.out.String("✓").Foreground(p.out.Color("#22c55e"))
	fmt.Fprintf(p.out, "%s %s\n", mark, msg)
}

// Error prints a step failure message.
func (p *Printer) Error(msg string) {
	mark := p.out.String("✗").Foreground(p.out.Color("#ef4444")).Bold()
	fmt.Fprintf(p.out, "%s %s\n", mark, msg)
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, p.out.String(msg).Faint())
}

var bannerLines = []string{
	"             _   _             __ _",
	"  __ _  ___| |_(_) ___  _ __  / _| | _____      __",
	" / _` |/ __| __| |/ _ \\| '_ \\| |_| |/ _ \\ \\ /\\ / /",
	"| (_| | (__| |_| | (_) | | | |  _| | (_) \\ V  V /",
	" \\__,_|\\___|\\__|_|\\___/|_| |_|_| |_|\\___/ \\_/\\_/",
}

// Using a subtle gradient-like color scheme (Indigo/Violet)
var bannerColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

// Banner prints the actionflow ASCII banner.
func (p *Printer) Banner() {
	fmt.Fprintln(p.out)
	for i, line := range bannerLines {
		fmt.Fprintln(p.out, p.out.String(line).Foreground(p.out.Color(bannerColors[i])))
	}
	fmt.Fprintln(p.out)
}
