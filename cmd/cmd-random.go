package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/jinshan6677-spec/fpgen/internal/sample"
)

// randomCommand returns the "random" CLI subcommand.
func randomCommand() *cli.Command {
	return &cli.Command{
		Name:  "random",
		Usage: "Draw one recorded template, weighted",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "os",
				Usage: "Filter by operating system",
			},
			&cli.StringFlag{
				Name:  "browser",
				Usage: "Filter by browser",
			},
			&cli.UintFlag{
				Name:  "seed",
				Usage: "Deterministic sampling seed",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := storeFrom(cmd)
			if err != nil {
				return err
			}

			src := sample.Ambient()
			if cmd.IsSet("seed") {
				src = sample.NewLCG(uint32(cmd.Uint("seed")))
			}

			tpl, ok := store.Random(cmd.String("os"), cmd.String("browser"), src)
			if !ok {
				return fmt.Errorf("no templates match os=%q browser=%q", cmd.String("os"), cmd.String("browser"))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(tpl)
		},
	}
}
