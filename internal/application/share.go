package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/velolib/valolab/internal/ports"
	"go.uber.org/zap"
)

var ErrClipboardDenied = errors.New("clipboard write denied")

// Share copies the current URL to the clipboard and reports the outcome
// through the notifier. A failed copy never touches the board.
func (b *Board) Share(ctx context.Context) (string, error) {
	url := b.URL()

	if b.clipboard == nil {
		b.notify(ports.Toast{Level: ports.ToastError, Title: "Failed to copy", Description: "Please copy the URL manually"})
		return url, fmt.Errorf("%w: no clipboard configured", ErrClipboardDenied)
	}

	if err := b.clipboard.WriteText(ctx, url); err != nil {
		b.logger.Warn("clipboard write failed", zap.Error(err))
		b.notify(ports.Toast{Level: ports.ToastError, Title: "Failed to copy", Description: "Please copy the URL manually"})
		return url, fmt.Errorf("%w: %w", ErrClipboardDenied, err)
	}

	b.notify(ports.Toast{Level: ports.ToastSuccess, Title: "Link copied!", Description: "Share this URL to share your compositions"})
	return url, nil
}

func (b *Board) notify(toast ports.Toast) {
	if b.notifier == nil {
		return
	}
	b.notifier.Notify(toast)
}
