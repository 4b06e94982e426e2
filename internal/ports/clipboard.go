package ports

import "context"

type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}
