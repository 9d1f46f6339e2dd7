package tools

import (
	"context"
	"encoding/json"

	"github.com/roomiebot/roomie/internal/house"
)

// AddShoppingTool appends items to the shared shopping list.
type AddShoppingTool struct {
	store *house.Store
}

func (t *AddShoppingTool) Name() string { return "add_to_shopping_list" }

func (t *AddShoppingTool) Description() string {
	return "Add one or more items to the shared shopping list. Optionally record a quantity and who asked for them."
}

func (t *AddShoppingTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"items": {
				"type": "array",
				"items": {"type": "string"},
				"description": "Items to add"
			},
			"quantity": {
				"type": "string",
				"description": "Quantity applied to every item, e.g. '2' or 'one bag'"
			},
			"requested_by": {
				"type": "string",
				"description": "Name of the roommate who asked for the items"
			}
		},
		"required": ["items"]
	}`)
}

func (t *AddShoppingTool) Execute(_ context.Context, params map[string]any) (string, error) {
	items, err := stringSlice(params, "items")
	if err != nil {
		return "", err
	}
	quantity, err := stringParam(params, "quantity")
	if err != nil {
		return "", err
	}
	requestedBy, err := stringParam(params, "requested_by")
	if err != nil {
		return "", err
	}
	return t.store.AddShopping(items, quantity, requestedBy), nil
}

// GetShoppingTool lists the current shopping list.
type GetShoppingTool struct {
	store *house.Store
}

func (t *GetShoppingTool) Name() string { return "get_shopping_list" }

func (t *GetShoppingTool) Description() string {
	return "Show everything currently on the shared shopping list."
}

func (t *GetShoppingTool) Parameters() json.RawMessage {
	return json.RawMessage(`{"type": "object", "properties": {}}`)
}

func (t *GetShoppingTool) Execute(_ context.Context, _ map[string]any) (string, error) {
	return t.store.ShoppingList(), nil
}

// ClearShoppingTool empties the shopping list.
type ClearShoppingTool struct {
	store *house.Store
}

func (t *ClearShoppingTool) Name() string { return "clear_shopping_list" }

func (t *ClearShoppingTool) Description() string {
	return "Remove everything from the shopping list, e.g. after a grocery run."
}

func (t *ClearShoppingTool) Parameters() json.RawMessage {
	return json.RawMessage(`{"type": "object", "properties": {}}`)
}

func (t *ClearShoppingTool) Execute(_ context.Context, _ map[string]any) (string, error) {
	return t.store.ClearShopping(), nil
}

// RemoveShoppingTool removes named items from the shopping list.
type RemoveShoppingTool struct {
	store *house.Store
}

func (t *RemoveShoppingTool) Name() string { return "remove_from_shopping_list" }

func (t *RemoveShoppingTool) Description() string {
	return "Remove specific items from the shopping list. Each name removes the first matching entry."
}

func (t *RemoveShoppingTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"items": {
				"type": "array",
				"items": {"type": "string"},
				"description": "Items to remove (case-insensitive match)"
			}
		},
		"required": ["items"]
	}`)
}

func (t *RemoveShoppingTool) Execute(_ context.Context, params map[string]any) (string, error) {
	items, err := stringSlice(params, "items")
	if err != nil {
		return "", err
	}
	return t.store.RemoveShopping(items), nil
}
