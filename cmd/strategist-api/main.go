package main

import (
	"context"
	"os"
	"time"

	"github.com/whalekit/strategist/pkg/cmd"
	"github.com/whalekit/strategist/pkg/log"
	"github.com/whalekit/strategist/pkg/session"
	cli "github.com/urfave/cli/v3"
)

const defaultPort = 9190

func main() {
	logger := log.WithModule("api")

	command := &cli.Command{
		Name:                  "strategist-api",
		Usage:                 "Run the private-domain outreach strategy wizard",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "event-bus",
				Usage:   "Event bus provider (memory, none)",
				Value:   "memory",
				Sources: cli.EnvVars("EVENT_BUS_TYPE"),
			},
			&cli.DurationFlag{
				Name:    "generation-latency",
				Usage:   "Simulated latency for generation requests",
				Value:   800 * time.Millisecond,
				Sources: cli.EnvVars("GENERATION_LATENCY"),
			},
			&cli.FloatFlag{
				Name:    "generation-failure-rate",
				Usage:   "Probability in [0,1] that a generation request fails",
				Value:   0,
				Sources: cli.EnvVars("GENERATION_FAILURE_RATE"),
			},
			&cli.IntFlag{
				Name:    "generation-seed",
				Usage:   "Seed for the generation simulator (0 means random)",
				Value:   0,
				Sources: cli.EnvVars("GENERATION_SEED"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger.InfoContext(ctx, "Initializing Strategist API")

			eventBus := cmd.NewEventBus(command.String("event-bus"), logger)
			defer func() {
				if eventBus == nil {
					return
				}

				if err := eventBus.Close(); err != nil {
					logger.ErrorContext(ctx, "Failed to close event bus", "error", err)
				}
			}()

			generator := cmd.NewGenerator(
				command.Duration("generation-latency"),
				command.Float("generation-failure-rate"),
				int64(command.Int("generation-seed")),
			)

			api := NewAPI(
				logger,
				session.NewManager(),
				generator,
				eventBus,
			)

			err := api.Start(command.Int("port"))
			if err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)
			}

			return nil
		},
	}

	err := command.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}
