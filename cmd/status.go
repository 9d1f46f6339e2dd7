package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roomiebot/roomie/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show roomie configuration status",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	fmt.Printf("%s roomie Status\n\n", logo)

	_, statErr := os.Stat(cfgPath)
	cfgMark := "✗"
	if statErr == nil {
		cfgMark = "✓"
	}
	fmt.Printf("Config:     %s %s\n", cfgPath, cfgMark)

	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("  (could not load config: %v)\n", err)
		return nil
	}

	housePath := cfg.HousePath()
	_, houseErr := os.Stat(housePath)
	houseMark := "✗"
	if houseErr == nil {
		houseMark = "✓"
	}
	fmt.Printf("House data: %s %s\n", housePath, houseMark)
	fmt.Printf("Model:      %s\n", cfg.Gemini.Model)
	fmt.Printf("Trigger:    %s\n", cfg.Server.Trigger)
	fmt.Printf("Port:       %d\n\n", cfg.Server.Port)

	fmt.Println("Credentials:")
	fmt.Printf("  GroupMe bot ID:  %s\n", presence(cfg.GroupMe.BotID))
	fmt.Printf("  GroupMe token:   %s\n", presence(cfg.GroupMe.AccessToken))
	fmt.Printf("  Gemini API key:  %s\n", presence(cfg.Gemini.APIKey))

	if cfg.Announce.Enabled {
		fmt.Printf("\nAnnouncement:    ✓ %s\n", cfg.Announce.Cron)
	}
	return nil
}

func presence(v string) string {
	if v == "" {
		return "✗ not set"
	}
	return "✓ set"
}
