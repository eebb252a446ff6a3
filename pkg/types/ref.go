package types

import "fmt"

// ResourceKey is the stable identity of a resource or sub-resource:
// the repository path of its stored unit plus its kind and name.
// It is a comparable value type and is used to key the correspondence
// map built during copying, avoiding any reliance on object identity.
type ResourceKey struct {
	Asset string
	Kind  Kind
	Name  string
}

func (k ResourceKey) String() string {
	return fmt.Sprintf("%s#%s/%s", k.Asset, k.Kind, k.Name)
}

// Ref is a serialized reference to a resource. A zero Asset means a
// null reference, which is always preserved as-is.
type Ref struct {
	Asset string `yaml:"asset"`
	Kind  Kind   `yaml:"kind,omitempty"`
	Name  string `yaml:"name,omitempty"`
}

// IsZero reports whether the reference is null
func (r Ref) IsZero() bool {
	return r.Asset == ""
}

// Key returns the identity the reference points at
func (r Ref) Key() ResourceKey {
	return ResourceKey{Asset: r.Asset, Kind: r.Kind, Name: r.Name}
}

// RefTo builds a reference to the given identity
func RefTo(key ResourceKey) Ref {
	return Ref{Asset: key.Asset, Kind: key.Kind, Name: key.Name}
}
