// Package dependency wires core roomie services using go.uber.org/dig.
package dependency

import (
	"log/slog"
	"time"

	"go.uber.org/dig"

	"github.com/roomiebot/roomie/internal/agent"
	"github.com/roomiebot/roomie/internal/channels"
	"github.com/roomiebot/roomie/internal/config"
	"github.com/roomiebot/roomie/internal/gemini"
	"github.com/roomiebot/roomie/internal/house"
	"github.com/roomiebot/roomie/internal/remind"
	"github.com/roomiebot/roomie/internal/schema"
	"github.com/roomiebot/roomie/internal/session"
	"github.com/roomiebot/roomie/internal/tools"
)

// Container holds the resolved service singletons. Callers use the typed
// getter methods; they never need to import dig directly.
type Container struct {
	server  *channels.Server
	reminds *remind.Service
}

func (c *Container) Server() *channels.Server { return c.server }
func (c *Container) Reminders() *remind.Service { return c.reminds }

// New builds and wires all services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	providers := []any{
		func() *config.Config { return cfg },
		newHouseData,
		newStore,
		newSender,
		newRemindService,
		newRegistry,
		newSessionManager,
		newPromptBuilder,
		newProvider,
		newOrchestrator,
		newServer,
	}
	for _, p := range providers {
		if err := d.Provide(p); err != nil {
			return nil, err
		}
	}

	var result *Container
	err := d.Invoke(func(server *channels.Server, reminds *remind.Service) {
		result = &Container{server: server, reminds: reminds}
	})
	return result, err
}

func newHouseData(cfg *config.Config) *house.Data {
	data, err := house.LoadData(cfg.HousePath())
	if err != nil {
		slog.Warn("house data unreadable, starting empty", "path", cfg.HousePath(), "err", err)
		return &house.Data{}
	}
	return data
}

func newStore(data *house.Data) *house.Store {
	return house.NewStore(data)
}

func newSender(cfg *config.Config) *channels.Sender {
	return channels.NewSender(cfg.GroupMe.BotID)
}

func newRemindService(cfg *config.Config, sender *channels.Sender, store *house.Store) *remind.Service {
	svc := remind.NewService(sender)
	if cfg.Announce.Enabled && cfg.Announce.Cron != "" {
		svc.SetAnnouncement(cfg.Announce.Cron, store.CleaningSchedule)
	}
	return svc
}

func newRegistry(store *house.Store, reminds *remind.Service) *tools.Registry {
	return tools.NewRegistry(store, reminds)
}

func newSessionManager() *session.Manager {
	return session.NewManager()
}

func newPromptBuilder(data *house.Data) *agent.PromptBuilder {
	return agent.NewPromptBuilder(data)
}

func newProvider(cfg *config.Config) schema.ModelProvider {
	return gemini.New(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.APIBase)
}

func newOrchestrator(
	cfg *config.Config,
	provider schema.ModelProvider,
	sessions *session.Manager,
	registry *tools.Registry,
	prompts *agent.PromptBuilder,
	sender *channels.Sender,
) *agent.Orchestrator {
	timeout := time.Duration(cfg.Server.TurnTimeoutSeconds) * time.Second
	return agent.NewOrchestrator(provider, sessions, registry, prompts, sender, timeout)
}

func newServer(cfg *config.Config, orch *agent.Orchestrator, sessions *session.Manager) *channels.Server {
	return channels.NewServer(cfg.Server.Port, cfg.Server.Trigger, orch, sessions)
}
