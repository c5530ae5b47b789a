package livelist

// chain is a doubly linked order over IDs. The zero ID is the sentinel, so
// next[ID{}] is the head and prev[ID{}] the tail.
type chain struct {
	prev map[ID]ID
	next map[ID]ID
}

func newChain() *chain {
	return &chain{
		prev: map[ID]ID{{}: {}},
		next: map[ID]ID{{}: {}},
	}
}

func (c *chain) contains(id ID) bool {
	if id.IsZero() {
		return false
	}
	_, ok := c.next[id]
	return ok
}

func (c *chain) len() int {
	return len(c.next) - 1
}

func (c *chain) head() ID {
	return c.next[ID{}]
}

func (c *chain) tail() ID {
	return c.prev[ID{}]
}

func (c *chain) previousOf(id ID) ID {
	return c.prev[id]
}

func (c *chain) nextOf(id ID) ID {
	return c.next[id]
}

// insertAfter links id after previous. A zero previous makes id the head.
func (c *chain) insertAfter(id, previous ID) {
	following := c.next[previous]
	c.next[previous] = id
	c.prev[id] = previous
	c.next[id] = following
	c.prev[following] = id
}

// remove unlinks id and returns its predecessor.
func (c *chain) remove(id ID) ID {
	previous, following := c.prev[id], c.next[id]
	c.next[previous] = following
	c.prev[following] = previous
	delete(c.next, id)
	delete(c.prev, id)
	return previous
}

func (c *chain) ids() []ID {
	ids := make([]ID, 0, c.len())
	for id := c.head(); !id.IsZero(); id = c.next[id] {
		ids = append(ids, id)
	}
	return ids
}
