package model

// Visibility controls whether an intent may be served without authentication.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// IntentUnknown is the reserved intent returned when no catalog intent
// scores above the matcher threshold. It is never part of the catalog.
const IntentUnknown = "unknown"

// IntentDefinition is a single entry in the intent catalog.
// Immutable after catalog load.
type IntentDefinition struct {
	Name       string     `json:"name"`
	Visibility Visibility `json:"visibility"`
	Examples   []string   `json:"examples"`
	Keywords   []string   `json:"keywords"`
}

// IsPrivate reports whether the intent requires an authenticated session.
func (d IntentDefinition) IsPrivate() bool {
	return d.Visibility == VisibilityPrivate
}
