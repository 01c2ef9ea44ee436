package models

// Label represents a tag that can be applied to cards.
// Labels live in a single shared catalog and are attached to cards by ID;
// the name and color stored on a card are a materialized copy that must be
// kept in sync when the catalog entry changes.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // Hex color code (e.g., "#7D56F4")
}
