package tools

import (
	"context"
	"encoding/json"

	"github.com/roomiebot/roomie/internal/house"
)

// CleaningScheduleTool reports the static cleaning rotation.
type CleaningScheduleTool struct {
	store *house.Store
}

func (t *CleaningScheduleTool) Name() string { return "get_cleaning_schedule" }

func (t *CleaningScheduleTool) Description() string {
	return "Show the current cleaning rotation: who is responsible for which chore."
}

func (t *CleaningScheduleTool) Parameters() json.RawMessage {
	return json.RawMessage(`{"type": "object", "properties": {}}`)
}

func (t *CleaningScheduleTool) Execute(_ context.Context, _ map[string]any) (string, error) {
	return t.store.CleaningSchedule(), nil
}
