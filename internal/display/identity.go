package display

import (
	"strings"
)

// keySeparator joins identity components. Occurrences inside a component
// are escaped by keyEscaper so distinct identities never share a key.
const keySeparator = "|"

var keyEscaper = strings.NewReplacer(`\`, `\\`, keySeparator, `\`+keySeparator)

// Identity is the normalized hardware identity of a display.
type Identity struct {
	Make   string `json:"make"`
	Model  string `json:"model"`
	Serial string `json:"serial"`
}

// Resolve derives the stable identity of an output from its make, model and
// serial. The output name is ignored.
func Resolve(o Output) Identity {
	return NewIdentity(o.Make, o.Model, o.Serial)
}

// NewIdentity normalizes raw make, model and serial strings.
func NewIdentity(manufacturer, model, serial string) Identity {
	return Identity{
		Make:   normalize(manufacturer),
		Model:  normalize(model),
		Serial: normalize(serial),
	}
}

// Key returns the string used to match saved entries.
// Without a serial the key is built from make and model only.
func (id Identity) Key() string {
	parts := []string{keyEscaper.Replace(id.Make), keyEscaper.Replace(id.Model)}
	if !id.IsFallback() {
		parts = append(parts, keyEscaper.Replace(id.Serial))
	}
	return strings.Join(parts, keySeparator)
}

// IsFallback reports whether the key lacks a serial number and may therefore
// collide with another display of the same model.
func (id Identity) IsFallback() bool {
	return id.Serial == ""
}

// String implements fmt.Stringer.
func (id Identity) String() string {
	return id.Key()
}

// Collisions groups the names of outputs whose identity keys are shared by
// more than one output. The result is empty when every key is unique.
func Collisions(outputs []Output) map[string][]string {
	names := make(map[string][]string)
	for _, o := range outputs {
		key := Resolve(o).Key()
		names[key] = append(names[key], o.Name)
	}

	collisions := make(map[string][]string)
	for key, n := range names {
		if len(n) > 1 {
			collisions[key] = n
		}
	}
	return collisions
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
