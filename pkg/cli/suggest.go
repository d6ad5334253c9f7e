package cli

import (
	"context"
	"fmt"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/usecase/assistant"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func suggestCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "suggest",
		Usage: "Suggest which pending task to focus on",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.withLogger(ctx)

			repo, closeRepo, err := cfg.newRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			tasks, err := repo.ListTasks(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list tasks")
			}

			fmt.Fprintf(c.Root().Writer, "%s\n", assistant.New().Suggest(tasks))
			return nil
		},
	}
}
