package dialogue

import "fmt"

// Validate checks that every edge lands on a node, that every node is
// reachable from Root, and that an ending is reachable from every node.
func (g *Graph) Validate() []error {
	var errs []error
	if _, ok := g.Nodes[Root]; !ok {
		return []error{fmt.Errorf("%w: %s", ErrNodeNotFound, Root)}
	}

	for id, n := range g.Nodes {
		if n.ID != id {
			errs = append(errs, fmt.Errorf("node %s registered under %s", n.ID, id))
		}
		if len(n.Choices) == 0 {
			errs = append(errs, fmt.Errorf("node %s has no choices", id))
		}
		for i, c := range n.Choices {
			switch {
			case c.Terminal() && c.Next != "":
				errs = append(errs, fmt.Errorf("node %s choice %d has both next and ending", id, i))
			case !c.Terminal() && c.Next == "":
				errs = append(errs, fmt.Errorf("node %s choice %d leads nowhere", id, i))
			case !c.Terminal():
				if _, ok := g.Nodes[c.Next]; !ok {
					errs = append(errs, fmt.Errorf("node %s choice %d: %w: %s", id, i, ErrNodeNotFound, c.Next))
				}
			}
		}
	}

	reachable := g.Reachable()
	finishes := g.canFinish()
	for id := range reachable {
		if !finishes[id] {
			errs = append(errs, fmt.Errorf("node %s cannot reach an ending", id))
		}
	}
	return errs
}

// Reachable returns the set of nodes reachable from Root.
func (g *Graph) Reachable() map[NodeID]bool {
	seen := map[NodeID]bool{}
	queue := []NodeID{Root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		n, ok := g.Nodes[id]
		if !ok {
			continue
		}
		seen[id] = true
		for _, c := range n.Choices {
			if !c.Terminal() {
				queue = append(queue, c.Next)
			}
		}
	}
	return seen
}

// canFinish marks every node from which some path reaches an ending.
func (g *Graph) canFinish() map[NodeID]bool {
	done := map[NodeID]bool{}
	for changed := true; changed; {
		changed = false
		for id, n := range g.Nodes {
			if done[id] {
				continue
			}
			for _, c := range n.Choices {
				if c.Terminal() || done[c.Next] {
					done[id] = true
					changed = true
					break
				}
			}
		}
	}
	return done
}
