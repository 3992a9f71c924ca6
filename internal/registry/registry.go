// Package registry loads and serves the technology template catalog: the
// per-technology pattern profiles, the detection method weights, and the
// confidence threshold. The catalog is loaded once, validated up front, and
// treated as read-only for the life of the process.
package registry

import "sort"

// Registry is an immutable, validated view of a catalog document. It is
// safe to share across repeated detections; construct one with Load or
// FromDocument and pass it by reference.
type Registry struct {
	doc       Document
	enabled   bool
	threshold float64
	methods   map[string]Method
}

// Enabled reports whether auto-detection is switched on in the catalog.
func (r *Registry) Enabled() bool {
	return r.enabled
}

// Threshold returns the confidence threshold a top candidate must meet
// (inclusive) to be accepted as a match.
func (r *Registry) Threshold() float64 {
	return r.threshold
}

// Method returns the resolved configuration for one detection method.
func (r *Registry) Method(name string) (Method, bool) {
	m, ok := r.methods[name]
	return m, ok
}

// Methods returns all detection methods in their canonical order:
// file extensions, configuration files, directory structure.
func (r *Registry) Methods() []Method {
	out := make([]Method, 0, len(methodOrder))
	for _, name := range methodOrder {
		out = append(out, r.methods[name])
	}
	return out
}

// Profile looks up the template profile for a technology id.
func (r *Registry) Profile(id string) (TechnologyProfile, bool) {
	p, ok := r.doc.Templates[id]
	return p, ok
}

// Fallback returns the generic profile used when no technology clears the
// confidence threshold or a matched technology has no template.
func (r *Registry) Fallback() TechnologyProfile {
	return r.doc.Fallback
}

// Technologies returns the ids of all templated technologies, sorted.
func (r *Registry) Technologies() []string {
	ids := make([]string, 0, len(r.doc.Templates))
	for id := range r.doc.Templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
