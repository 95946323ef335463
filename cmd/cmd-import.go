package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/jinshan6677-spec/fpgen/internal/catalog"
)

// importCommand returns the "import" CLI subcommand.
func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Merge a fingerprint document into the catalog",
		ArgsUsage: "<document.json>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one document path")
			}

			store, err := storeFrom(cmd)
			if err != nil {
				return err
			}

			path := cmd.Args().First()
			doc, err := catalog.LoadDocumentFile(path)
			if err != nil {
				return fmt.Errorf("reading document: %w", err)
			}

			added := store.Import(doc)
			slog.Info("import complete", "path", path, "added", added, "total", store.Statistics().Total)
			return nil
		},
	}
}
