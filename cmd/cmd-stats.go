package cmd

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
)

// statsCommand returns the "stats" CLI subcommand.
func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print catalog statistics",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := storeFrom(cmd)
			if err != nil {
				return err
			}

			stats := store.Statistics()
			slog.Info("catalog statistics", "total", stats.Total)
			for _, os := range store.OSKeys() {
				slog.Info("os", "name", os, "templates", stats.ByOS[os])
				for _, browser := range store.BrowserKeys(os) {
					slog.Info("browser", "os", os, "name", browser, "templates", len(store.ByOSAndBrowser(os, browser)))
				}
			}
			return nil
		},
	}
}
