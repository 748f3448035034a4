package ecs

// store holds every instance of one component kind.
// dense keeps insertion order so iteration is stable while the store is unchanged.
type store struct {
	values map[EntityID]Component
	dense  []EntityID
}

func newStore() *store {
	return &store{
		values: make(map[EntityID]Component),
		dense:  make([]EntityID, 0, 64),
	}
}

func (s *store) has(id EntityID) bool {
	_, ok := s.values[id]
	return ok
}

func (s *store) set(id EntityID, c Component) {
	if _, exists := s.values[id]; !exists {
		s.dense = append(s.dense, id)
	}
	s.values[id] = c
}

// remove deletes id while preserving the relative order of the remaining entities
func (s *store) remove(id EntityID) bool {
	if _, exists := s.values[id]; !exists {
		return false
	}
	delete(s.values, id)
	for i, e := range s.dense {
		if e == id {
			s.dense = append(s.dense[:i], s.dense[i+1:]...)
			break
		}
	}
	return true
}

func (s *store) count() int {
	return len(s.dense)
}
