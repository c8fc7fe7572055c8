package model

// Field holds one mutable model attribute and tracks whether it has ever
// been set. Set reports the "changed vs already-set" outcome spec.md §3
// requires of every setter: the first successful Set is always a change (an
// uninitialized field has no prior value to compare against); a later Set
// with an equal value reports unchanged so the caller can suppress the
// state-change notification while still replying success to the client.
type Field[T comparable] struct {
	value T
	set   bool
}

// Get returns the current value and whether it has been set.
func (f *Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// Initialized reports whether the field has ever been set.
func (f *Field[T]) Initialized() bool {
	return f.set
}

// Set stores v and reports whether this changed the field's value.
func (f *Field[T]) Set(v T) bool {
	changed := !f.set || f.value != v
	f.value = v
	f.set = true
	return changed
}

// Value returns the current value, or the zero value if never set.
func (f *Field[T]) Value() T {
	return f.value
}
