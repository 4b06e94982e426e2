package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/velolib/valolab/internal/domain"
	"github.com/velolib/valolab/internal/ports"
)

const (
	catalogPathKey  = "catalog.path"
	catalogFileMode = 0o644
	catalogDirMode  = 0o755
	tempFilePattern = ".catalog-*.toml.tmp"
)

// Provider reads the catalog from a TOML file. With no path configured, or a
// path that does not exist, it serves domain.DefaultCatalog.
type Provider struct {
	path string
}

var _ ports.CatalogProvider = (*Provider)(nil)

func NewProvider(cfg *viper.Viper) (*Provider, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(catalogPathKey)
	if path == "" {
		return &Provider{}, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	return &Provider{path: filepath.Clean(absPath)}, nil
}

func (p *Provider) Path() string {
	return p.path
}

func (p *Provider) Catalog(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}
	if p.path == "" {
		return domain.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultCatalog(), nil
		}
		return domain.Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Catalog{}, err
	}
	file.applyDefaults()

	catalog, err := fromSchema(file)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog %s: %w", p.path, err)
	}
	return catalog, nil
}

// Export writes catalog to path atomically.
func Export(path string, catalog domain.Catalog) error {
	file := toSchema(catalog)
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(path), catalogDirMode); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode catalog file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp catalog file: %w", err)
	}

	if err := tempFile.Chmod(catalogFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp catalog file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp catalog file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace catalog file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(catalog domain.Catalog) fileSchema {
	file := fileSchema{Version: currentSchemaVersion}
	for _, m := range catalog.Maps() {
		entry := mapSchema{ID: string(m.ID)}
		if m.Name != string(m.ID) {
			entry.Name = m.Name
		}
		file.Maps = append(file.Maps, entry)
	}
	for _, a := range catalog.Agents() {
		file.Agents = append(file.Agents, agentSchema{
			ID:   string(a.ID),
			Name: a.Name,
			Role: string(a.Role),
			Icon: a.Icon,
		})
	}
	return file
}

func fromSchema(file fileSchema) (domain.Catalog, error) {
	maps := make([]domain.Map, 0, len(file.Maps))
	for _, m := range file.Maps {
		maps = append(maps, domain.Map{ID: domain.MapID(m.ID), Name: m.Name})
	}

	agents := make([]domain.Agent, 0, len(file.Agents))
	for _, a := range file.Agents {
		agents = append(agents, domain.Agent{
			ID:   domain.AgentID(a.ID),
			Name: a.Name,
			Role: domain.Role(a.Role),
			Icon: a.Icon,
		})
	}

	return domain.NewCatalog(maps, agents)
}
