package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// Scheduler is the interface the reminder tool uses to arm one-shot timed
// callbacks. The remind service implements it.
type Scheduler interface {
	Schedule(at time.Time, message, user string)
}

// ScheduleReminderTool arms a one-shot reminder that posts back to the room
// when due.
type ScheduleReminderTool struct {
	sched Scheduler
}

func (t *ScheduleReminderTool) Name() string { return "schedule_reminder" }

func (t *ScheduleReminderTool) Description() string {
	return "Schedule a one-time reminder that will be posted to the group chat at the given time."
}

func (t *ScheduleReminderTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"time": {
				"type": "string",
				"description": "When to fire, ISO-8601, e.g. '2026-09-01T18:00:00'"
			},
			"message": {
				"type": "string",
				"description": "The reminder text"
			},
			"user": {
				"type": "string",
				"description": "Roommate the reminder is for"
			}
		},
		"required": ["time", "message"]
	}`)
}

func (t *ScheduleReminderTool) Execute(_ context.Context, params map[string]any) (string, error) {
	timeStr, err := requiredString(params, "time")
	if err != nil {
		return "", err
	}
	message, err := requiredString(params, "message")
	if err != nil {
		return "", err
	}
	user, err := stringParam(params, "user")
	if err != nil {
		return "", err
	}

	// An unparseable time is an expected user mistake, not a dispatch
	// failure: answer with a plain failure string and schedule nothing.
	at, err := dateparse.ParseLocal(timeStr)
	if err != nil {
		return fmt.Sprintf("Sorry, I couldn't understand the time %q. Try something like '2026-09-01 18:00'.", timeStr), nil
	}

	t.sched.Schedule(at, message, user)

	confirmation := fmt.Sprintf("Reminder set for %s: %s", timeStr, message)
	if user != "" {
		confirmation += fmt.Sprintf(" (for %s)", user)
	}
	return confirmation, nil
}
