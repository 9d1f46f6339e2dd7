package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/roomiebot/roomie/internal/config"
	"github.com/roomiebot/roomie/internal/dependency"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook server and reminder scheduler",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	c, err := dependency.New(cfg)
	if err != nil {
		return fmt.Errorf("wiring services: %w", err)
	}

	fmt.Printf("%s roomie v%s\n", logo, version)
	fmt.Printf("Listening on :%d, trigger %q, model %s\n",
		cfg.Server.Port, cfg.Server.Trigger, cfg.Gemini.Model)
	if cfg.GroupMe.BotID == "" {
		fmt.Println("Warning: no GroupMe bot ID configured; replies will be dropped")
	}
	if cfg.Gemini.APIKey == "" {
		fmt.Println("Warning: no Gemini API key configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.Server().Start(ctx) })
	g.Go(func() error { return c.Reminders().Start(ctx) })

	if err := g.Wait(); err != nil && err != ctx.Err() {
		return err
	}
	fmt.Println("Shut down.")
	return nil
}
