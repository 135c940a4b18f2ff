package world

import "sync"

// Repository is an id-keyed in-memory store of world and body
// snapshots — an arena, not a durable store. A single lock guards the
// whole read-modify-write cycle, so readers always see either the pre-
// or post-step snapshot, never a partial write.
type Repository struct {
	mu     sync.RWMutex
	worlds map[ID]World
	bodies map[BodyID]Body
}

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{
		worlds: make(map[ID]World),
		bodies: make(map[BodyID]Body),
	}
}

// Save upserts a world snapshot.
func (r *Repository) Save(w World) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.worlds[w.ID] = w
}

// Find returns a world snapshot by id.
func (r *Repository) Find(id ID) (World, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.worlds[id]
	return w, ok
}

// Remove deletes a world. Removing an absent id is a no-op.
func (r *Repository) Remove(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.worlds, id)
}

// Len reports how many worlds are stored.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.worlds)
}

// SaveBody upserts a body snapshot.
func (r *Repository) SaveBody(b Body) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bodies[b.ID] = b
}

// FindBody returns a body snapshot by id.
func (r *Repository) FindBody(id BodyID) (Body, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bodies[id]
	return b, ok
}

// RemoveBody deletes a body. Removing an absent id is a no-op.
func (r *Repository) RemoveBody(id BodyID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bodies, id)
}

// BodiesInWorld returns snapshots of every body bound to the world.
// Order is unspecified.
func (r *Repository) BodiesInWorld(id ID) []Body {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Body
	for _, b := range r.bodies {
		if b.WorldID == id {
			out = append(out, b)
		}
	}
	return out
}
