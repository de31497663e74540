// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/artview/internal/core/styles"
)

type ctxKey struct{}

// Printer writes one styled line per call.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a context carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(icon string, style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if icon != "" {
		msg = style.Render(icon) + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, msg)
}

func (p *Printer) Printf(format string, args ...any) {
	p.line("", lipgloss.Style{}, format, args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line("✓", lipgloss.NewStyle().Foreground(styles.ColorSuccess), format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.IconNotifyInfo, lipgloss.NewStyle().Foreground(styles.ColorPrimary), format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.IconNotifyWarning, lipgloss.NewStyle().Foreground(styles.ColorWarning), format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.IconNotifyError, lipgloss.NewStyle().Foreground(styles.ColorError), format, args...)
}
