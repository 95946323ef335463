package cmd

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/jinshan6677-spec/fpgen/internal/catalog"
)

// searchCommand returns the "search" CLI subcommand.
func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search templates by version bounds and GPU vendor",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "os",
				Usage: "Filter by operating system",
			},
			&cli.StringFlag{
				Name:  "browser",
				Usage: "Filter by browser",
			},
			&cli.IntFlag{
				Name:  "min-major",
				Usage: "Inclusive lower bound on major version",
			},
			&cli.IntFlag{
				Name:  "max-major",
				Usage: "Inclusive upper bound on major version",
			},
			&cli.StringFlag{
				Name:  "gpu",
				Usage: "Case-insensitive substring match on the GPU vendor",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := storeFrom(cmd)
			if err != nil {
				return err
			}

			results := store.Search(catalog.Query{
				OS:        cmd.String("os"),
				Browser:   cmd.String("browser"),
				MinMajor:  int(cmd.Int("min-major")),
				MaxMajor:  int(cmd.Int("max-major")),
				GPUVendor: cmd.String("gpu"),
			})

			if len(results) == 0 {
				slog.Info("no templates matched")
				return nil
			}

			slog.Info("search complete", "count", len(results))
			for _, t := range results {
				slog.Info("template",
					"id", t.ID,
					"os", t.OS,
					"browser", t.Browser,
					"major", t.MajorVersion,
					"gpu_vendor", t.WebGL.UnmaskedVendor,
				)
			}
			return nil
		},
	}
}
