package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/jinshan6677-spec/fpgen/internal/app"
	"github.com/jinshan6677-spec/fpgen/internal/noise"
)

// noiseCommand returns the "noise" CLI subcommand.
func noiseCommand() *cli.Command {
	return &cli.Command{
		Name:  "noise",
		Usage: "Print a deterministic noise sequence",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "seed",
				Usage: "Generator seed (securely generated when omitted)",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "Noise level: off, low, medium, high (default from config)",
			},
			&cli.StringFlag{
				Name:  "distribution",
				Usage: "Noise distribution: uniform, gaussian (default from config)",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of values to emit",
				Value: 10,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := app.ConfigFrom(cmd)
			if err != nil {
				return err
			}

			level := cfg.Noise.Level
			if cmd.IsSet("level") {
				level = cmd.String("level")
			}
			distribution := cfg.Noise.Distribution
			if cmd.IsSet("distribution") {
				distribution = cmd.String("distribution")
			}

			seed := noise.GenerateSecureSeed()
			if cmd.IsSet("seed") {
				seed = uint32(cmd.Uint("seed"))
			}

			engine := noise.New(seed, noise.Config{
				Level:        noise.Level(level),
				Distribution: noise.Distribution(distribution),
			})

			slog.Info("noise sequence", "seed", seed, "level", level, "distribution", distribution)
			for i := 0; i < int(cmd.Int("count")); i++ {
				fmt.Printf("%.12f\n", engine.GetNoise(i))
			}
			return nil
		},
	}
}
