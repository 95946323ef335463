package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/jinshan6677-spec/fpgen/internal/synth"
)

// generateCommand returns the "generate" CLI subcommand.
func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Compose synthetic browser identities",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "os",
				Usage: "Target operating system (random when omitted)",
			},
			&cli.StringFlag{
				Name:  "browser",
				Usage: "Target browser (random when omitted)",
			},
			&cli.UintFlag{
				Name:  "seed",
				Usage: "Deterministic sampling seed",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of identities to generate",
				Value: 1,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			composer, err := composerFrom(cmd)
			if err != nil {
				return err
			}

			var seed *uint32
			if cmd.IsSet("seed") {
				v := uint32(cmd.Uint("seed"))
				seed = &v
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			for i := 0; i < int(cmd.Int("count")); i++ {
				identity, err := composer.Generate(synth.Request{
					OS:      cmd.String("os"),
					Browser: cmd.String("browser"),
					Seed:    seed,
				})
				if err != nil {
					return fmt.Errorf("generating identity: %w", err)
				}
				if err := enc.Encode(identity); err != nil {
					return fmt.Errorf("encoding identity: %w", err)
				}
				if seed != nil {
					next := *seed + 1
					seed = &next
				}
			}
			return nil
		},
	}
}
