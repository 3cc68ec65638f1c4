package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"ess-chatbot/internal/model"
)

// Catalog is the static set of intent definitions, loaded once at startup.
// Declaration order is preserved: the matcher breaks similarity ties by
// catalog order, first wins.
type Catalog struct {
	intents []model.IntentDefinition
	byName  map[string]int
}

type catalogFile struct {
	Intents []model.IntentDefinition `json:"intents"`
}

// Load reads and validates the intent catalog from a JSON file.
// Any schema violation fails startup loudly.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read intent catalog %q: %w", path, err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse intent catalog %q: %w", path, err)
	}

	return New(file.Intents)
}

// New builds a catalog from in-memory definitions, validating each entry.
func New(intents []model.IntentDefinition) (*Catalog, error) {
	if len(intents) == 0 {
		return nil, ErrEmptyCatalog
	}

	byName := make(map[string]int, len(intents))
	for i, def := range intents {
		if def.Name == "" {
			return nil, fmt.Errorf("intent %d: %w", i, ErrMissingName)
		}
		if def.Name == model.IntentUnknown {
			return nil, fmt.Errorf("intent %q: %w", def.Name, ErrReservedName)
		}
		if _, ok := byName[def.Name]; ok {
			return nil, fmt.Errorf("intent %q: %w", def.Name, ErrDuplicateName)
		}
		if def.Visibility != model.VisibilityPublic && def.Visibility != model.VisibilityPrivate {
			return nil, fmt.Errorf("intent %q: %w", def.Name, ErrInvalidVisibility)
		}
		if len(def.Examples) == 0 {
			return nil, fmt.Errorf("intent %q: %w", def.Name, ErrNoExamples)
		}
		byName[def.Name] = i
	}

	return &Catalog{intents: intents, byName: byName}, nil
}

// All returns the intent definitions in declaration order.
// The returned slice must not be mutated.
func (c *Catalog) All() []model.IntentDefinition {
	return c.intents
}

// Get returns the definition for the given intent name.
func (c *Catalog) Get(name string) (model.IntentDefinition, bool) {
	i, ok := c.byName[name]
	if !ok {
		return model.IntentDefinition{}, false
	}
	return c.intents[i], true
}

// IsPrivate reports whether the named intent requires authentication.
// Unknown names are treated as private to avoid leaking data through
// a catalog/dispatcher mismatch.
func (c *Catalog) IsPrivate(name string) bool {
	def, ok := c.Get(name)
	if !ok {
		return true
	}
	return def.IsPrivate()
}

// Names returns all intent names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.intents))
	for i, def := range c.intents {
		names[i] = def.Name
	}
	return names
}

// Len returns the number of intents in the catalog.
func (c *Catalog) Len() int {
	return len(c.intents)
}
