package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func askCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)
	flags = append(flags, adapterFlags(&cfg)...)

	return &cli.Command{
		Name:      "ask",
		Usage:     "Ask the assistant a single question",
		ArgsUsage: "<text>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.withLogger(ctx)

			text := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(text) == "" {
				return goerr.New("text is required")
			}

			repo, closeRepo, err := cfg.newRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			loader, err := cfg.newLoader(ctx, repo)
			if err != nil {
				return err
			}

			engine, err := cfg.newEngine(ctx)
			if err != nil {
				return err
			}

			snapshot, err := loader.Load(ctx)
			if err != nil {
				logging.From(ctx).Warn("failed to load snapshot", "error", err)
			}

			reply, intent := engine.RespondWithIntent(text, snapshot)
			fmt.Fprintf(c.Root().Writer, "[%s]\n%s\n", intent, reply)
			return nil
		},
	}
}
