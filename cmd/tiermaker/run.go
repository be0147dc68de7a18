package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tiermaker/internal/config"
	"tiermaker/internal/content"
	"tiermaker/internal/domain"
	"tiermaker/internal/importer"
	"tiermaker/internal/logging"
	"tiermaker/internal/theme"
	"tiermaker/internal/tiers"
	"tiermaker/internal/ui"
)

type runOptions struct {
	configPath string
	importPath string
	watch      bool
	theme      string
}

func configService(path string) config.ConfigService {
	if path == "" {
		return config.NewConfigService()
	}
	return config.NewConfigServiceWithPath(path)
}

// loadOrCreateConfig loads the config file, writing the defaults when none exists
func loadOrCreateConfig(svc config.ConfigService) (*config.Config, error) {
	if _, err := os.Stat(svc.Path()); errors.Is(err, os.ErrNotExist) {
		cfg := config.DefaultConfig()
		if err := svc.Save(cfg); err != nil {
			// Not fatal: run with defaults
			logging.NewLogger("main").WithError(err).Warn("could not write default config")
		}
		return cfg, nil
	}
	return svc.Load()
}

// applyOptions overlays command line flags on the loaded config
func applyOptions(cfg *config.Config, opts runOptions) error {
	if opts.importPath != "" {
		cfg.ImportPath = opts.importPath
	}
	if opts.watch {
		cfg.UISettings.WatchImport = true
	}
	if opts.theme != "" {
		if _, ok := cfg.Themes[opts.theme]; !ok {
			return fmt.Errorf("unknown theme %q: %w", opts.theme, domain.ErrInvalidArgument)
		}
		cfg.Theme = opts.theme
	}
	if cfg.UISettings.WatchImport && cfg.ImportPath == "" {
		return fmt.Errorf("--watch needs an import file: %w", domain.ErrInvalidArgument)
	}
	return nil
}

func runTUI(ctx context.Context, opts runOptions) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("tiermaker needs an interactive terminal; see 'tiermaker --help' for non-interactive commands")
	}

	svc := configService(opts.configPath)
	cfg, err := loadOrCreateConfig(svc)
	if err != nil {
		return err
	}
	if err := applyOptions(cfg, opts); err != nil {
		return err
	}

	// The TUI owns the terminal, so logs always go to a file.
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(filepath.Dir(svc.Path()), "tiermaker.log")
	}
	if err := logging.Configure(cfg.Log); err != nil {
		return err
	}
	defer logging.Close()
	log := logging.NewLogger("main")

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	contentStore := content.NewStore()
	tierStore := tiers.NewStore()
	themeStore := theme.NewStore()

	if cfg.ImportPath != "" {
		items, err := importer.Load(cfg.ImportPath)
		if err != nil {
			return err
		}
		contentStore.ImportList(items)
		log.WithField("count", len(items)).Info("imported items at startup")
	}

	model := ui.NewModel(cfg, contentStore, tierStore, themeStore)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward store changes to the UI
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-model.Changes():
				p.Send(ui.ChangedMsg())
			}
		}
	}()

	if cfg.UISettings.WatchImport {
		watcher, err := importer.NewWatcher(cfg.ImportPath, contentStore.UpdateContent, func(err error) {
			log.WithError(err).Warn("import reload failed")
		})
		if err != nil {
			return err
		}
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.WithError(err).Error("watcher stopped")
			}
		}()
	}

	log.Info("starting UI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("UI exited normally")
	return nil
}
