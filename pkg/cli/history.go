package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func historyCommand() *cli.Command {
	var (
		cfg    config
		offset int64
		limit  int64
	)

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "offset",
			Usage:       "Offset for pagination",
			Value:       0,
			Sources:     cli.EnvVars("ASSISTANT_HISTORY_OFFSET"),
			Destination: &offset,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of conversations to list",
			Value:       20,
			Sources:     cli.EnvVars("ASSISTANT_HISTORY_LIMIT"),
			Destination: &limit,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "history",
		Usage: "List recorded conversations, newest first. Needs --project: without Firestore each process starts with an empty in-memory store",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.withLogger(ctx)

			if offset < 0 || limit < 0 {
				return goerr.New("offset and limit must not be negative",
					goerr.V("offset", offset),
					goerr.V("limit", limit))
			}

			repo, closeRepo, err := cfg.newRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			conversations, err := repo.ListConversations(ctx, int(offset), int(limit))
			if err != nil {
				return goerr.Wrap(err, "failed to list conversations")
			}

			if len(conversations) == 0 {
				fmt.Fprintf(c.Root().Writer, "No conversations found\n")
				return nil
			}

			for _, conv := range conversations {
				fmt.Fprintf(c.Root().Writer, "%s\t%s\t%s\n",
					conv.ID,
					conv.CreatedAt.Format("2006-01-02 15:04:05"),
					conv.InputText,
				)
			}

			return nil
		},
	}
}
