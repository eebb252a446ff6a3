package types

import "sort"

// VisitRefs calls fn for every reference-valued field reachable through
// the resource's own serializable surface, including references nested
// inside compound fields and ordered collections, at arbitrary depth.
// It does not follow into referenced objects and does not descend into
// sub-resources; cross-object traversal is driven by the caller, once
// per object. Map keys are visited in sorted order so traversal is
// deterministic run-to-run.
//
// fn receives a pointer into the live value tree: assigning through it
// rewrites the reference in place.
func (r *Resource) VisitRefs(fn func(*Ref)) {
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.Fields[k].visitRefs(fn)
	}
}

func (v *Value) visitRefs(fn func(*Ref)) {
	if v == nil {
		return
	}
	switch {
	case v.Ref != nil:
		fn(v.Ref)
	case v.List != nil:
		for _, item := range v.List {
			item.visitRefs(fn)
		}
	case v.Map != nil:
		keys := make([]string, 0, len(v.Map))
		for k := range v.Map {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v.Map[k].visitRefs(fn)
		}
	}
}
