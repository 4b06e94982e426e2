package toast

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/velolib/valolab/internal/ports"
)

// Notifier prints toasts as single styled lines.
type Notifier struct {
	out     io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	detail  lipgloss.Style
}

var _ ports.Notifier = (*Notifier)(nil)

func New(out io.Writer) *Notifier {
	return &Notifier{
		out:     out,
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (n *Notifier) Notify(toast ports.Toast) {
	title := n.success.Render(toast.Title)
	if toast.Level == ports.ToastError {
		title = n.failure.Render(toast.Title)
	}

	if toast.Description == "" {
		_, _ = fmt.Fprintln(n.out, title)
		return
	}
	_, _ = fmt.Fprintf(n.out, "%s %s\n", title, n.detail.Render(toast.Description))
}
