package keymap

// Resolver maps incoming key strings to actions. When two bindings claim
// the same key, the earliest one in the slice wins, so Bindings stays
// ordered by dispatch priority.
type Resolver struct {
	actions map[string]Action
}

// NewResolver indexes bindings for dispatch.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{actions: make(map[string]Action)}
	for _, b := range bindings {
		for _, key := range b.Keys {
			if _, bound := r.actions[key]; !bound {
				r.actions[key] = b.Action
			}
		}
	}
	return r
}

// Resolve returns the action bound to key, or the zero Action when the key
// is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}
