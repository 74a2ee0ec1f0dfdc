package arbitrary

import (
	"os"

	"gopkg.in/yaml.v3"
)

// StringDefaults is the shape of a YAML fixture consumed by
// LoadDefaultsYAML: a flat map from a logical name (not a Go type — the
// registry keys on reflect.Type, but fixture files are easiest to author
// against stable names) to a list of literal values that are registered
// as an Of-backed provider (uniform choice among them) for that name.
type StringDefaults map[string][]string

// LoadDefaultsYAML reads a YAML fixture of the StringDefaults shape and
// registers an Of(...) provider producing string under each of its
// names (a name with an empty list is skipped), accessible via
// NamedDefault. Used by example-driven tests to
// seed defaultFor-style lookups without recompiling the test binary.
func LoadDefaultsYAML(path string) (StringDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixtures StringDefaults
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, err
	}
	for name, values := range fixtures {
		registerNamed(name, values)
	}
	return fixtures, nil
}

var namedRegistry = struct {
	m map[string]Arbitrary[string]
}{m: map[string]Arbitrary[string]{}}

func registerNamed(name string, values []string) {
	if len(values) == 0 {
		return
	}
	namedRegistry.m[name] = Of(values...)
}

// NamedDefault returns the arbitrary registered under name by a prior
// LoadDefaultsYAML call, and whether it was found.
func NamedDefault(name string) (Arbitrary[string], bool) {
	a, ok := namedRegistry.m[name]
	return a, ok
}

// Names returns every name currently registered via LoadDefaultsYAML, for
// tooling that wants to list what is available.
func Names() []string {
	names := make([]string, 0, len(namedRegistry.m))
	for name := range namedRegistry.m {
		names = append(names, name)
	}
	return names
}
