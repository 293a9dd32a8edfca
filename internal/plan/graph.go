package plan

// Descendants returns the ids of every task reachable from the given
// task through child lists, depth-first. The id itself is not
// included. An unknown id yields an empty slice.
func (s *Store) Descendants(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.tasks[id]; !ok {
		return nil
	}
	return s.descendants(id)
}

// descendants walks the hierarchy under an already-held lock. The
// hierarchy is a forest, so the walk always terminates.
func (s *Store) descendants(id string) []string {
	var ids []string
	for _, childID := range s.tasks[id].ChildIDs {
		if _, ok := s.tasks[childID]; !ok {
			continue
		}
		ids = append(ids, childID)
		ids = append(ids, s.descendants(childID)...)
	}
	return ids
}

// TreeNode is a task with its subtree attached, for rendering.
type TreeNode struct {
	Task     Task
	Children []TreeNode
}

// BuildTree projects the whole hierarchy as a forest of TreeNodes.
// The projection is read-only; mutating it does not affect the store.
func (s *Store) BuildTree() []TreeNode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var roots []TreeNode
	for _, id := range s.order {
		if t := s.tasks[id]; t.ParentID == "" {
			roots = append(roots, s.subtree(t))
		}
	}
	return roots
}

func (s *Store) subtree(t *Task) TreeNode {
	node := TreeNode{Task: cloneTask(t)}
	for _, childID := range t.ChildIDs {
		if child, ok := s.tasks[childID]; ok {
			node.Children = append(node.Children, s.subtree(child))
		}
	}
	return node
}

// WithLinks filters tasks down to those participating in the link
// graph in either direction.
func WithLinks(tasks []Task) []Task {
	var linked []Task
	for _, t := range tasks {
		if t.HasLinks() {
			linked = append(linked, t)
		}
	}
	return linked
}
