// Package config defines the configuration schema for roomie.
//
// Configuration lives at ~/.roomie/config.json. Credentials can also be
// supplied through environment variables so the file never has to hold
// secrets (GROUPME_BOT_ID, GROUPME_ACCESS_TOKEN, GEMINI_API_KEY).
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ServerConfig configures the inbound webhook server.
type ServerConfig struct {
	Port               int    `json:"port"`
	Trigger            string `json:"trigger"`
	TurnTimeoutSeconds int    `json:"turnTimeoutSeconds"`
}

// GroupMeConfig holds the GroupMe bot credentials.
// AccessToken is not used by the message flow yet; it is kept for the
// user-facing API endpoints a future version will need.
type GroupMeConfig struct {
	BotID       string `json:"botId"`
	AccessToken string `json:"accessToken,omitempty"`
}

// GeminiConfig holds the model API credentials and model selection.
type GeminiConfig struct {
	APIKey  string `json:"apiKey"`
	Model   string `json:"model"`
	APIBase string `json:"apiBase,omitempty"`
}

// AnnounceConfig configures the optional recurring cleaning-schedule post.
// Cron is a standard five-field cron expression; empty disables the job.
type AnnounceConfig struct {
	Enabled bool   `json:"enabled"`
	Cron    string `json:"cron,omitempty"`
}

// Config is the root configuration object.
type Config struct {
	Server        ServerConfig   `json:"server"`
	GroupMe       GroupMeConfig  `json:"groupme"`
	Gemini        GeminiConfig   `json:"gemini"`
	Announce      AnnounceConfig `json:"announce"`
	HouseDataPath string         `json:"houseDataPath"`
}

// DefaultConfig returns a Config populated with every default value.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:               8080,
			Trigger:            "@roomie",
			TurnTimeoutSeconds: 90,
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
		HouseDataPath: "~/.roomie/house.json",
	}
}

// HousePath returns HouseDataPath with a leading ~ expanded.
func (c *Config) HousePath() string {
	return expandHome(c.HouseDataPath)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
