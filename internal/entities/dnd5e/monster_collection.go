package dnd5e

// MonsterCollection holds monsters keyed by name, the monster identity.
// Put replaces a monster with the same name in place. The zero value is an
// empty collection. It is not safe for concurrent use.
type MonsterCollection struct {
	order  []string
	byName map[string]*Monster
}

// NewMonsterCollection creates a collection holding monsters in order
func NewMonsterCollection(monsters ...*Monster) *MonsterCollection {
	c := &MonsterCollection{byName: make(map[string]*Monster, len(monsters))}
	for _, m := range monsters {
		c.Put(m)
	}
	return c
}

// Put adds m, replacing any monster with the same name. It reports whether
// a monster was replaced.
func (c *MonsterCollection) Put(m *Monster) bool {
	if m == nil {
		return false
	}
	if c.byName == nil {
		c.byName = make(map[string]*Monster)
	}
	if _, ok := c.byName[m.Name()]; ok {
		c.byName[m.Name()] = m
		return true
	}
	c.byName[m.Name()] = m
	c.order = append(c.order, m.Name())
	return false
}

// Get returns the monster with name
func (c *MonsterCollection) Get(name string) (*Monster, bool) {
	m, ok := c.byName[name]
	return m, ok
}

// Contains reports whether a monster with name exists
func (c *MonsterCollection) Contains(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Delete removes the monster with name and reports whether it existed
func (c *MonsterCollection) Delete(name string) bool {
	if _, ok := c.byName[name]; !ok {
		return false
	}
	delete(c.byName, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns the monsters in insertion order
func (c *MonsterCollection) List() []*Monster {
	out := make([]*Monster, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Len is the number of monsters
func (c *MonsterCollection) Len() int {
	return len(c.order)
}
