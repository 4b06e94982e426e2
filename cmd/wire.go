package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	tomlcatalog "github.com/velolib/valolab/internal/adapters/catalog/toml"
	systemclipboard "github.com/velolib/valolab/internal/adapters/clipboard/system"
	"github.com/velolib/valolab/internal/adapters/location/address"
	boardadapter "github.com/velolib/valolab/internal/adapters/render/board"
	"github.com/velolib/valolab/internal/adapters/render/toast"
	"github.com/velolib/valolab/internal/application"
	"github.com/velolib/valolab/internal/codec"
	"github.com/velolib/valolab/internal/domain"
	"github.com/velolib/valolab/internal/logging"
	"github.com/velolib/valolab/internal/ports"
	"go.uber.org/zap"
)

const (
	configDirName  = ".valolab"
	configFileName = "config.toml"
	envPrefix      = "VALOLAB"

	baseURLKey  = "share.base_url"
	logLevelKey = "log.level"

	defaultBaseURL = "https://valolab.app/"
)

type app struct {
	cfg           *viper.Viper
	catalog       domain.Catalog
	catalogPath   string
	codec         *codec.Codec
	clipboard     ports.Clipboard
	boardRenderer func(application.BoardView, boardadapter.RenderOptions) (string, error)
	logger        *zap.Logger
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	provider, err := tomlcatalog.NewProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire catalog provider: %w", err)
	}

	catalog, err := provider.Catalog(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return &app{
		cfg:           cfg,
		catalog:       catalog,
		catalogPath:   provider.Path(),
		codec:         codec.New(catalog),
		clipboard:     systemclipboard.Clipboard{},
		boardRenderer: boardadapter.Render,
		logger:        zap.NewNop(),
	}, nil
}

func loadConfig() (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	cfg.SetDefault(logLevelKey, logging.DefaultLevel)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigFile(filepath.Join(homeDir, configDirName, configFileName))
	cfg.SetConfigType("toml")
	if err := cfg.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return cfg, nil
}

func (a *app) checkCapabilities() {
	if !a.codec.Available() {
		a.logger.Warn("base64 encoding unavailable, share links will not update")
	}
}

// openBoard builds a board over rawURL, or the configured base URL when
// rawURL is empty, and loads whatever compositions it carries.
func (a *app) openBoard(cmd *cobra.Command, rawURL string) (*application.Board, error) {
	if rawURL == "" {
		rawURL = a.cfg.GetString(baseURLKey)
	}

	bar, err := address.New(rawURL)
	if err != nil {
		return nil, err
	}

	board := application.NewBoard(a.catalog, a.codec, bar, a.logger,
		application.WithClipboard(a.clipboard),
		application.WithNotifier(toast.New(cmd.ErrOrStderr())),
	)
	if status := board.LoadFromLocation(); status == application.LoadMalformed {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: could not decode compositions from URL, starting empty")
	}

	return board, nil
}
