package models

// Settings field types accepted in a plugin schema.
const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldNumber   = "number"
	FieldSwitch   = "switch"
	FieldSelect   = "select"
	FieldColor    = "color"
)

// ValidFieldTypes lists every accepted field type.
var ValidFieldTypes = []string{
	FieldText, FieldTextarea, FieldNumber, FieldSwitch, FieldSelect, FieldColor,
}

// IsValidFieldType reports whether t is an accepted schema field type.
func IsValidFieldType(t string) bool {
	for _, v := range ValidFieldTypes {
		if v == t {
			return true
		}
	}
	return false
}

// PluginManifest describes a plugin to the admin UI: identity plus the
// declarative settings schema used to generate its settings form.
type PluginManifest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Author      string          `json:"author,omitempty"`
	Description string          `json:"description,omitempty"`
	Sections    []SchemaSection `json:"sections,omitempty"`
}

// SchemaSection groups related fields in the generated settings form.
type SchemaSection struct {
	Title  string        `json:"title"`
	Fields []SchemaField `json:"fields"`
}

// SchemaField describes one configurable option. Min/Max apply to number
// fields, Options to select fields.
type SchemaField struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Default any      `json:"default,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Options []string `json:"options,omitempty"`
}

// PluginRecord is the stored state of an installed plugin: whether it is
// enabled and its raw settings values keyed by field ID.
type PluginRecord struct {
	ID       string         `json:"id"`
	Enabled  bool           `json:"enabled"`
	Settings map[string]any `json:"settings,omitempty"`
}

// Validate checks every field type in the manifest schema.
func (m PluginManifest) Validate() error {
	for _, sec := range m.Sections {
		for _, f := range sec.Fields {
			if !IsValidFieldType(f.Type) {
				return ErrInvalidFieldType
			}
		}
	}
	return nil
}
