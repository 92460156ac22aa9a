package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/mailgate/mailgate/handlers"
	"github.com/mailgate/mailgate/internal/config"
	"github.com/mailgate/mailgate/pkg/base"
	"github.com/mailgate/mailgate/pkg/mailops"
	"github.com/mailgate/mailgate/pkg/session"
	"github.com/mailgate/mailgate/pkg/utils"
)

func main() {
	// Best-effort; credentials may come from the real environment instead.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	app := &cli.App{
		Name:  base.ServiceName,
		Usage: "tool server exposing one email account over IMAP and SMTP",
		Commands: []*cli.Command{
			serveCommand(),
			checkCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "start the HTTP tool server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   ":6274",
				Usage:   "listen address",
				EnvVars: []string{"MAILGATE_ADDR"},
			},
		},
		Action: func(c *cli.Context) error {
			ctx := context.Background()

			otelShutdown, err := utils.SetupOTelSDK(ctx)
			if err != nil {
				return fmt.Errorf("setting up telemetry: %w", err)
			}
			defer func() {
				if err := otelShutdown(ctx); err != nil {
					log.Printf("telemetry shutdown: %v", err)
				}
			}()

			logger := utils.NewLogger()

			toolSet, err := buildToolSet(logger)
			if err != nil {
				return err
			}

			srv := fiber.New(fiber.Config{
				AppName:               base.ServiceName,
				DisableStartupMessage: true,
			})
			srv.Use(otelfiber.Middleware())
			handlers.Register(srv, toolSet)

			addr := c.String("addr")
			logger.InfoContext(ctx, "mailgate listening", slog.String("addr", addr))
			return srv.Listen(addr)
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "validate the email account configuration",
		Action: func(c *cli.Context) error {
			fmt.Println(config.Summary())

			if _, err := config.IMAPFromEnv(); err != nil {
				return fmt.Errorf("IMAP configuration: %w", err)
			}
			if _, err := config.SMTPFromEnv(); err != nil {
				return fmt.Errorf("SMTP configuration: %w", err)
			}

			fmt.Println("Configuration OK")
			return nil
		},
	}
}

func buildToolSet(logger *slog.Logger) (*handlers.ToolSet, error) {
	imapMgr, err := session.NewIMAPManager(session.WithIMAPLogger(logger))
	if err != nil {
		return nil, err
	}

	smtpMgr, err := session.NewSMTPManager(session.WithSMTPLogger(logger))
	if err != nil {
		return nil, err
	}

	mailboxes, err := mailops.NewMailboxes(imapMgr, logger)
	if err != nil {
		return nil, err
	}

	messages, err := mailops.NewMessages(imapMgr, logger)
	if err != nil {
		return nil, err
	}

	sender, err := mailops.NewSender(smtpMgr, logger)
	if err != nil {
		return nil, err
	}

	return &handlers.ToolSet{
		Mailboxes: mailboxes,
		Messages:  messages,
		Sender:    sender,
		Logger:    logger,
	}, nil
}
