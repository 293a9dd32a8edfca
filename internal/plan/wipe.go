package plan

// WipeOut deletes every task that is not Must importance, at any depth
// of the hierarchy, and returns how many were removed. Surviving tasks
// keep no references to removed ids; a surviving child of a removed
// parent becomes a root task. Returns 0 when nothing is eligible.
func (s *Store) WipeOut() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := make(map[string]bool)
	for id, t := range s.tasks {
		if t.Importance != Must {
			removed[id] = true
		}
	}
	if len(removed) == 0 {
		return 0
	}

	s.remove(removed)
	return len(removed)
}

// HasWipeable reports whether a wipe-out would remove anything. The
// calling layer uses this to skip the destructive confirmation prompt
// when it would be pointless.
func (s *Store) HasWipeable() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.Importance != Must {
			return true
		}
	}
	return false
}
