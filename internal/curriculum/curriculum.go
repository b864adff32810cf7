package curriculum

import "slices"

// Curriculum holds the ordered letter groups with precomputed indices.
// It is read-only once built.
type Curriculum struct {
	groups   []Group
	byKey    map[string]int
	byLetter map[string]*Letter
	groupOf  map[string]string
	levels   []Level
	levelIdx map[string]int
}

// New builds a curriculum from groups after validating them.
func New(groups []Group) (*Curriculum, error) {
	if err := validateGroups(groups); err != nil {
		return nil, err
	}
	return build(groups), nil
}

func build(groups []Group) *Curriculum {
	c := &Curriculum{
		groups:   slices.Clone(groups),
		byKey:    make(map[string]int, len(groups)),
		byLetter: make(map[string]*Letter),
		groupOf:  make(map[string]string),
	}
	for i := range c.groups {
		g := &c.groups[i]
		c.byKey[g.Key] = i
		for j := range g.Letters {
			c.byLetter[g.Letters[j].ID] = &g.Letters[j]
			c.groupOf[g.Letters[j].ID] = g.Key
		}
	}
	c.levels, c.levelIdx = buildLevels(c.groups)
	return c
}

// Groups returns all groups in curriculum order.
func (c *Curriculum) Groups() []Group {
	return slices.Clone(c.groups)
}

// Group returns the group with the given key.
func (c *Curriculum) Group(key string) (Group, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Group{}, false
	}
	return c.groups[i], true
}

// Letter returns the letter with the given ID.
func (c *Curriculum) Letter(id string) (Letter, bool) {
	l, ok := c.byLetter[id]
	if !ok {
		return Letter{}, false
	}
	return *l, true
}

// GroupOf returns the key of the group containing the letter.
func (c *Curriculum) GroupOf(id string) (string, bool) {
	key, ok := c.groupOf[id]
	return key, ok
}

// Letters returns every letter in curriculum order.
func (c *Curriculum) Letters() []Letter {
	var all []Letter
	for _, g := range c.groups {
		all = append(all, g.Letters...)
	}
	return all
}

// Ready reports whether the curriculum can serve components.
// A nil curriculum is not ready.
func (c *Curriculum) Ready() bool {
	return c != nil && len(c.groups) > 0
}
