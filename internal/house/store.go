package house

import (
	"fmt"
	"strings"
	"sync"
)

// ShoppingEntry is one item on the shopping list. Quantity and RequestedBy
// are optional decorations applied when the item was added.
type ShoppingEntry struct {
	Item        string
	Quantity    string
	RequestedBy string
}

// Event is one calendar entry. Events are append-only.
type Event struct {
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	Title     string
	Attendees []string
}

// Store holds the volatile household collections. All mutations happen under
// one mutex; nothing here survives a restart.
type Store struct {
	data *Data

	mu       sync.Mutex
	shopping []ShoppingEntry
	events   []Event
}

// NewStore creates a Store bound to the static house data.
func NewStore(data *Data) *Store {
	return &Store{data: data}
}

// AddShopping appends one entry per item, applying the same optional
// quantity/requester to all, and returns a confirmation naming every item.
func (s *Store) AddShopping(items []string, quantity, requestedBy string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := make([]string, 0, len(items))
	for _, item := range items {
		entry := ShoppingEntry{Item: item, Quantity: quantity, RequestedBy: requestedBy}
		s.shopping = append(s.shopping, entry)
		added = append(added, renderEntry(entry))
	}
	return "Added to the shopping list: " + strings.Join(added, ", ")
}

// ShoppingList renders the list as a 1-indexed enumeration in insertion order.
func (s *Store) ShoppingList() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.shopping) == 0 {
		return "The shopping list is empty."
	}

	var b strings.Builder
	b.WriteString("Shopping list:")
	for i, entry := range s.shopping {
		fmt.Fprintf(&b, "\n%d. %s", i+1, renderEntry(entry))
	}
	return b.String()
}

// ClearShopping removes every entry, reporting the count captured before
// clearing.
func (s *Store) ClearShopping() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.shopping)
	s.shopping = nil
	return fmt.Sprintf("Cleared %d items from the shopping list.", n)
}

// RemoveShopping removes, for each requested item, the first entry whose item
// matches case-insensitively. Duplicates need repeated calls to fully clear.
func (s *Store) RemoveShopping(items []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed, missing []string
	for _, item := range items {
		idx := -1
		for i, entry := range s.shopping {
			if strings.EqualFold(entry.Item, item) {
				idx = i
				break
			}
		}
		if idx < 0 {
			missing = append(missing, item)
			continue
		}
		s.shopping = append(s.shopping[:idx], s.shopping[idx+1:]...)
		removed = append(removed, item)
	}

	var parts []string
	if len(removed) > 0 {
		parts = append(parts, "Removed from the shopping list: "+strings.Join(removed, ", ")+".")
	}
	if len(missing) > 0 {
		parts = append(parts, "Could not find: "+strings.Join(missing, ", ")+".")
	}
	if len(parts) == 0 {
		return "Nothing to remove."
	}
	return strings.Join(parts, " ")
}

// ScheduleEvent appends an event. Omitted attendees default to the full
// roster. The confirmation skips the attendee enumeration when the attendee
// count equals the roster size; this is a count comparison, so a hand-picked
// group of the same size reads as "everyone".
func (s *Store) ScheduleEvent(date, timeOfDay, title string, attendees []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if attendees == nil {
		attendees = append([]string(nil), s.data.Members...)
	}
	s.events = append(s.events, Event{Date: date, Time: timeOfDay, Title: title, Attendees: attendees})

	confirmation := fmt.Sprintf("Scheduled %q for %s at %s", title, date, timeOfDay)
	if len(attendees) != len(s.data.Members) {
		confirmation += " with " + strings.Join(attendees, ", ")
	}
	return confirmation + "."
}

// Events renders the calendar as a 1-indexed enumeration. The attendee
// annotation appears only for events whose attendee list is non-empty and not
// roster-sized.
func (s *Store) Events() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events) == 0 {
		return "No events scheduled."
	}

	var b strings.Builder
	b.WriteString("Upcoming events:")
	for i, ev := range s.events {
		fmt.Fprintf(&b, "\n%d. %s — %s at %s", i+1, ev.Title, ev.Date, ev.Time)
		if len(ev.Attendees) > 0 && len(ev.Attendees) != len(s.data.Members) {
			fmt.Fprintf(&b, " (attendees: %s)", strings.Join(ev.Attendees, ", "))
		}
	}
	return b.String()
}

// CleaningSchedule returns the static cleaning schedule wrapped in its fixed
// prefix.
func (s *Store) CleaningSchedule() string {
	return "Current cleaning schedule:\n" + s.data.ScheduleText()
}

// Roster returns the full roommate roster.
func (s *Store) Roster() []string {
	return s.data.Members
}

// ShoppingEntries returns a snapshot of the current shopping list.
func (s *Store) ShoppingEntries() []ShoppingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ShoppingEntry, len(s.shopping))
	copy(out, s.shopping)
	return out
}

// EventCount returns the number of stored events.
func (s *Store) EventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func renderEntry(e ShoppingEntry) string {
	switch {
	case e.Quantity != "" && e.RequestedBy != "":
		return fmt.Sprintf("%s (%s, requested by %s)", e.Item, e.Quantity, e.RequestedBy)
	case e.Quantity != "":
		return fmt.Sprintf("%s (%s)", e.Item, e.Quantity)
	case e.RequestedBy != "":
		return fmt.Sprintf("%s (requested by %s)", e.Item, e.RequestedBy)
	default:
		return e.Item
	}
}
