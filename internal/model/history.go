package model

import "time"

// HistoryItem is one successful analysis. Items are never mutated after
// creation and only disappear when the owner clears the history.
type HistoryItem struct {
	ID          string    `json:"id"`
	Competitors []string  `json:"competitors"`
	Report      string    `json:"report"`
	Date        time.Time `json:"date"`
}

// NewHistoryItem stamps a new item with the given id and the current UTC time.
func NewHistoryItem(id string, competitors []string, report string, now time.Time) HistoryItem {
	names := make([]string, len(competitors))
	copy(names, competitors)
	return HistoryItem{
		ID:          id,
		Competitors: names,
		Report:      report,
		Date:        now.UTC(),
	}
}
