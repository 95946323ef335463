package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/jinshan6677-spec/fpgen/internal/app"
	"github.com/jinshan6677-spec/fpgen/internal/catalog"
	"github.com/jinshan6677-spec/fpgen/internal/synth"
	"github.com/jinshan6677-spec/fpgen/internal/version"
)

// Root returns the root CLI command.
func Root() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "fpgen",
		Usage:   "Generate weighted synthetic browser identities and measurement noise",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to configuration file",
				Value:       "config.yaml",
				Destination: &configPath,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg, err := app.Load(configPath)
			if err != nil {
				return ctx, err
			}

			var opts []catalog.Option
			if cfg.Catalog.AugmentInline != "" {
				opts = append(opts, catalog.WithAugment([]byte(cfg.Catalog.AugmentInline)))
			} else if cfg.Catalog.AugmentPath != "" {
				opts = append(opts, catalog.WithAugmentFile(cfg.Catalog.AugmentPath))
			}
			if cfg.Catalog.OverridesInline != "" {
				opts = append(opts, catalog.WithOverrides([]byte(cfg.Catalog.OverridesInline)))
			} else if cfg.Catalog.OverridesPath != "" {
				opts = append(opts, catalog.WithOverridesFile(cfg.Catalog.OverridesPath))
			}

			store := catalog.New(opts...)
			cmd.Metadata["config"] = cfg
			cmd.Metadata["store"] = store
			cmd.Metadata["composer"] = synth.NewComposer(store)
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCommand(),
			randomCommand(),
			lookupCommand(),
			searchCommand(),
			statsCommand(),
			importCommand(),
			exportCommand(),
			noiseCommand(),
			{
				Name:  "info",
				Usage: "Print build information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					slog.Info("build",
						"version", version.Version,
						"commit", version.Commit,
						"build_time", version.BuildTime,
					)
					return nil
				},
			},
		},
		Metadata: map[string]any{},
	}
}

// storeFrom extracts the catalog store from the CLI command metadata.
func storeFrom(cmd *cli.Command) (*catalog.Store, error) {
	v, ok := cmd.Root().Metadata["store"]
	if !ok {
		return nil, fmt.Errorf("store not found in command metadata")
	}
	store, ok := v.(*catalog.Store)
	if !ok {
		return nil, fmt.Errorf("store has unexpected type %T", v)
	}
	return store, nil
}

// composerFrom extracts the identity composer from the CLI command metadata.
func composerFrom(cmd *cli.Command) (*synth.Composer, error) {
	v, ok := cmd.Root().Metadata["composer"]
	if !ok {
		return nil, fmt.Errorf("composer not found in command metadata")
	}
	composer, ok := v.(*synth.Composer)
	if !ok {
		return nil, fmt.Errorf("composer has unexpected type %T", v)
	}
	return composer, nil
}
