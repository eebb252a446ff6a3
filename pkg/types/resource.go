package types

// Resource is an addressable unit of data stored in the repository. A
// resource loaded from a file may be a container carrying sub-resources
// in Objects (one level deep; sub-resources never nest further). Apart
// from its identity, a resource is an opaque tree of fields in which
// references to other resources may appear at any depth.
type Resource struct {
	// Asset is the repository path of the stored unit this resource
	// lives in. Sub-resources share their container's path.
	Asset string `yaml:"-"`

	Kind Kind   `yaml:"kind"`
	Name string `yaml:"name"`

	// Fields is the resource's serializable surface
	Fields map[string]*Value `yaml:"fields,omitempty"`

	// Objects holds sub-resources packed into the same stored unit.
	// Only primary resources carry objects.
	Objects []*Resource `yaml:"objects,omitempty"`

	modified bool
}

// Key returns the resource's stable identity
func (r *Resource) Key() ResourceKey {
	return ResourceKey{Asset: r.Asset, Kind: r.Kind, Name: r.Name}
}

// MarkModified flags the resource so the persistence layer will save it.
// The flag propagates to the primary resource's stored unit as a whole.
func (r *Resource) MarkModified() {
	r.modified = true
}

// Modified reports whether the resource has unsaved changes
func (r *Resource) Modified() bool {
	if r.modified {
		return true
	}
	for _, obj := range r.Objects {
		if obj.modified {
			return true
		}
	}
	return false
}

// ClearModified resets the dirty flag after a save
func (r *Resource) ClearModified() {
	r.modified = false
	for _, obj := range r.Objects {
		obj.modified = false
	}
}

// Clone returns a deep, editable copy of the resource and its objects.
// The copy starts out unmodified.
func (r *Resource) Clone() *Resource {
	if r == nil {
		return nil
	}
	out := &Resource{
		Asset: r.Asset,
		Kind:  r.Kind,
		Name:  r.Name,
	}
	if r.Fields != nil {
		out.Fields = make(map[string]*Value, len(r.Fields))
		for k, v := range r.Fields {
			out.Fields[k] = v.Clone()
		}
	}
	for _, obj := range r.Objects {
		child := obj.Clone()
		child.Asset = r.Asset
		out.Objects = append(out.Objects, child)
	}
	return out
}

// Flatten returns the resource followed by its sub-resources
func (r *Resource) Flatten() []*Resource {
	out := make([]*Resource, 0, 1+len(r.Objects))
	out = append(out, r)
	out = append(out, r.Objects...)
	return out
}
