package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "assistant",
		Usage: "Conversational assistant for tasks, notes, calendar and weather",
		Commands: []*cli.Command{
			chatCommand(),
			askCommand(),
			suggestCommand(),
			historyCommand(),
			showCommand(),
			serveCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
