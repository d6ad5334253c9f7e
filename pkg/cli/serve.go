package cli

import (
	"context"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/service/mcp"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)
	flags = append(flags, adapterFlags(&cfg)...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the assistant as an MCP server over stdio",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.withLogger(ctx)

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

			logging.From(ctx).Info("starting MCP server on stdio")
			return mcp.NewServer(engine, loader).Run(ctx)
		},
	}
}
