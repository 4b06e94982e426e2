package ports

import (
	"context"

	"github.com/velolib/valolab/internal/domain"
)

type CatalogProvider interface {
	Catalog(ctx context.Context) (domain.Catalog, error)
}
