package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// exportCommand returns the "export" CLI subcommand.
func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the catalog as a fingerprint document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file (stdout when omitted)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := storeFrom(cmd)
			if err != nil {
				return err
			}

			doc := store.Export()
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding catalog: %w", err)
			}

			output := cmd.String("output")
			if output == "" {
				fmt.Println(string(data))
				return nil
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			slog.Info("export complete", "path", output, "templates", store.Statistics().Total)
			return nil
		},
	}
}
