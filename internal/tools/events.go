package tools

import (
	"context"
	"encoding/json"

	"github.com/roomiebot/roomie/internal/house"
)

// ScheduleEventTool adds an entry to the house calendar.
type ScheduleEventTool struct {
	store *house.Store
}

func (t *ScheduleEventTool) Name() string { return "schedule_event" }

func (t *ScheduleEventTool) Description() string {
	return "Put an event on the house calendar. When attendees are omitted, everyone in the house is invited."
}

func (t *ScheduleEventTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"date": {
				"type": "string",
				"description": "Event date, YYYY-MM-DD"
			},
			"time": {
				"type": "string",
				"description": "Event time, HH:MM (24h)"
			},
			"title": {
				"type": "string",
				"description": "Short event title"
			},
			"attendees": {
				"type": "array",
				"items": {"type": "string"},
				"description": "Roommates attending; omit for everyone"
			}
		},
		"required": ["date", "time", "title"]
	}`)
}

func (t *ScheduleEventTool) Execute(_ context.Context, params map[string]any) (string, error) {
	date, err := requiredString(params, "date")
	if err != nil {
		return "", err
	}
	timeOfDay, err := requiredString(params, "time")
	if err != nil {
		return "", err
	}
	title, err := requiredString(params, "title")
	if err != nil {
		return "", err
	}
	attendees, err := stringSlice(params, "attendees")
	if err != nil {
		return "", err
	}
	return t.store.ScheduleEvent(date, timeOfDay, title, attendees), nil
}

// GetEventsTool lists the house calendar.
type GetEventsTool struct {
	store *house.Store
}

func (t *GetEventsTool) Name() string { return "get_events" }

func (t *GetEventsTool) Description() string {
	return "List every event currently on the house calendar."
}

func (t *GetEventsTool) Parameters() json.RawMessage {
	return json.RawMessage(`{"type": "object", "properties": {}}`)
}

func (t *GetEventsTool) Execute(_ context.Context, _ map[string]any) (string, error) {
	return t.store.Events(), nil
}
