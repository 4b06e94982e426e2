package system

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/velolib/valolab/internal/ports"
)

var clipboardWriteAll = clipboard.WriteAll

// Clipboard writes to the desktop clipboard through xclip, xsel, wl-copy,
// pbcopy or the Windows API, whichever atotto/clipboard finds.
type Clipboard struct{}

var _ ports.Clipboard = Clipboard{}

func (Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
