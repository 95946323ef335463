package cmd

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/jinshan6677-spec/fpgen/internal/catalog"
)

// lookupCommand returns the "lookup" CLI subcommand.
func lookupCommand() *cli.Command {
	return &cli.Command{
		Name:  "lookup",
		Usage: "List recorded templates by OS and/or browser",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "os",
				Usage: "Filter by operating system",
			},
			&cli.StringFlag{
				Name:  "browser",
				Usage: "Filter by browser",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := storeFrom(cmd)
			if err != nil {
				return err
			}

			osName := cmd.String("os")
			browser := cmd.String("browser")

			var templates []*catalog.Template
			switch {
			case osName != "" && browser != "":
				templates = store.ByOSAndBrowser(osName, browser)
			case osName != "":
				templates = store.ByOS(osName)
			case browser != "":
				templates = store.ByBrowser(browser)
			default:
				templates = store.All()
			}

			if len(templates) == 0 {
				slog.Info("no templates found", "os", osName, "browser", browser)
				return nil
			}

			slog.Info("lookup complete", "count", len(templates))
			for _, t := range templates {
				slog.Info("template",
					"id", t.ID,
					"os", t.OS,
					"browser", t.Browser,
					"version", t.BrowserVersion,
					"weight", t.EffectiveWeight(),
				)
			}
			return nil
		},
	}
}
