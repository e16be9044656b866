package star

// Item is the deferred-write proxy for one mapping binding: it names
// "the value at key" without committing a read or a write. Get resolves
// it as a lookup (possibly a miss); Set resolves it as a store.
type Item struct {
	dict Dict
	key  any
}

// Get reads the binding; a miss yields a null handle.
func (it Item) Get() Handle { return it.dict.Get(it.key) }

// Set writes the binding, reporting success.
func (it Item) Set(value any) bool { return it.dict.Add(it.key, value) }

// Key returns the key this proxy is bound to.
func (it Item) Key() any { return it.key }
