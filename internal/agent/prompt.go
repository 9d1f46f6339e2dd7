// Package agent assembles the per-turn system instruction and runs the
// model turn protocol.
package agent

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/roomiebot/roomie/internal/house"
)

// PromptBuilder assembles the system instruction from the static house data
// and a fresh clock. It is rebuilt on every turn so the model always knows
// the current time; nothing here is cached.
type PromptBuilder struct {
	data *house.Data
}

// NewPromptBuilder creates a PromptBuilder over the loaded house data.
func NewPromptBuilder(data *house.Data) *PromptBuilder {
	return &PromptBuilder{data: data}
}

// SystemInstruction returns the full per-turn preamble.
func (b *PromptBuilder) SystemInstruction(now time.Time) string {
	var sb strings.Builder

	sb.WriteString(`You are Roomie, the household assistant for a shared apartment's group chat.
You help the roommates with reminders, the shopping list, the house calendar, and the cleaning rotation.
Incoming messages look like "[time] Name: text" so you know who is speaking and when.

Keep replies short and friendly — this is a group chat, not an essay.
Use the provided functions to read or change household state; never invent list or calendar contents.
After a function runs, summarise its result in one or two sentences.`)

	fmt.Fprintf(&sb, "\n\n## Current time\n%s", now.Format("Monday, January 2, 2006 at 3:04 PM"))

	if len(b.data.Members) > 0 {
		fmt.Fprintf(&sb, "\n\n## Roommates\n%s", strings.Join(b.data.Members, ", "))
	}

	if len(b.data.CleaningTasks) > 0 || b.data.CleaningSchedule != "" {
		fmt.Fprintf(&sb, "\n\n## Cleaning rotation\n%s", b.data.ScheduleText())
	}

	if len(b.data.DishDuty) > 0 {
		sb.WriteString("\n\n## Dish duty\n")
		days := make([]string, 0, len(b.data.DishDuty))
		for day := range b.data.DishDuty {
			days = append(days, day)
		}
		sort.Strings(days)
		for i, day := range days {
			if i > 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "%s: %s", day, b.data.DishDuty[day])
		}
	}

	return sb.String()
}
