package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/chzyer/readline"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/usecase/chat"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func chatCommand() *cli.Command {
	var (
		cfg     config
		delay   time.Duration
		ordered bool
	)

	flags := []cli.Flag{
		&cli.DurationFlag{
			Name:        "delay",
			Usage:       "Simulated latency before each reply",
			Value:       chat.DefaultDelay,
			Sources:     cli.EnvVars("ASSISTANT_REPLY_DELAY"),
			Destination: &delay,
		},
		&cli.BoolFlag{
			Name:        "ordered",
			Usage:       "Deliver replies in send order when messages overlap",
			Sources:     cli.EnvVars("ASSISTANT_ORDERED_REPLIES"),
			Destination: &ordered,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, adapterFlags(&cfg)...)

	return &cli.Command{
		Name:  "chat",
		Usage: "Interactive chat with the assistant",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.withLogger(ctx)
			logger := logging.From(ctx)

			// Initialize dependencies
			repo, closeRepo, err := cfg.newRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			storage, err := cfg.newStorage(ctx)
			if err != nil {
				return err
			}

			loader, err := cfg.newLoader(ctx, repo)
			if err != nil {
				return err
			}

			engine, err := cfg.newEngine(ctx)
			if err != nil {
				return err
			}

			initial, err := loader.Load(ctx)
			if err != nil {
				logger.Warn("failed to load initial snapshot", "error", err)
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "> ",
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return goerr.Wrap(err, "failed to create readline")
			}
			defer rl.Close()

			out := rl.Stdout()
			typing := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
				spinner.WithWriter(os.Stderr),
				spinner.WithSuffix(" typing..."),
			)

			session := chat.NewSession(chat.NewSessionInput{
				Store:   repo,
				Storage: storage,
				Welcome: true,
			})
			defer session.Close()

			opts := []chat.Option{
				chat.WithDelay(delay),
				chat.WithTypingHook(func(on bool) {
					if on {
						typing.Start()
					} else {
						typing.Stop()
					}
				}),
				chat.WithReplyHook(func(msg model.Message) {
					printMessage(out, msg)
					rl.Refresh()
				}),
			}
			if ordered {
				opts = append(opts, chat.WithOrderedReplies())
			}

			pipeline := chat.New(chat.NewInput{
				Session: session,
				Engine:  engine,
				Source:  loader,
				Initial: initial,
			}, opts...)

			for _, msg := range session.Messages() {
				printMessage(out, msg)
			}
			printQuickActions(out)

			// Interactive chat loop
			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return goerr.Wrap(err, "failed to read input")
				}

				if strings.TrimSpace(line) == "exit" {
					break
				}

				if _, err := pipeline.Send(ctx, line); err != nil {
					return goerr.Wrap(err, "failed to send message")
				}
			}

			pipeline.Wait()
			fmt.Fprintf(out, "\nChat session completed\n")
			return nil
		},
	}
}

func printMessage(w io.Writer, msg model.Message) {
	if msg.Role == model.RoleAssistant {
		fmt.Fprintf(w, "🤖 %s\n\n", msg.Text)
	}
}

func printQuickActions(w io.Writer) {
	fmt.Fprintf(w, "Quick actions:\n")
	for _, action := range model.QuickActions {
		fmt.Fprintf(w, "  • %s\n", action)
	}
	fmt.Fprintf(w, "Type 'exit' to quit.\n\n")
}
