package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/usecase/chat"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	var (
		cfg            config
		conversationID model.ConversationID
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "conversation-id",
			Aliases:     []string{"id"},
			Usage:       "Conversation ID to show",
			Sources:     cli.EnvVars("ASSISTANT_CONVERSATION_ID"),
			Destination: (*string)(&conversationID),
			Required:    true,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, adapterFlags(&cfg)...)

	return &cli.Command{
		Name:  "show",
		Usage: "Show a recorded conversation with its snapshot. Needs --project, like history",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.withLogger(ctx)

			repo, closeRepo, err := cfg.newRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			storage, err := cfg.newStorage(ctx)
			if err != nil {
				return err
			}

			conv, err := chat.LoadConversation(ctx, repo, storage, conversationID)
			if err != nil {
				return goerr.Wrap(err, "failed to show conversation")
			}

			data, err := json.MarshalIndent(conv, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to marshal conversation")
			}

			fmt.Fprintf(c.Root().Writer, "%s\n", string(data))
			return nil
		},
	}
}
