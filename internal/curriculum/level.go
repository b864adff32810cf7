package curriculum

import (
	"fmt"
	"slices"
	"strings"
)

// Level is one (group, mode) pair. Levels are numbered in curriculum order
// with the write level of a group before its read level.
type Level struct {
	ID     string
	Number int
	Group  string
	Mode   Mode
	Title  string
	Next   string // empty for the last level
}

// LevelID returns the level identifier for a group and mode, which is also
// the key its progress is stored under.
func LevelID(group string, mode Mode) string {
	return group + "_" + string(mode)
}

// Description returns a one-line description of the level.
func (l Level) Description() string {
	verb := "write"
	if l.Mode == ModeRead {
		verb = "read"
	}
	return fmt.Sprintf("Learn to %s %s", verb, strings.ToLower(l.Title))
}

func buildLevels(groups []Group) ([]Level, map[string]int) {
	levels := make([]Level, 0, 2*len(groups))
	for _, g := range groups {
		for _, m := range Modes() {
			levels = append(levels, Level{
				ID:     LevelID(g.Key, m),
				Number: len(levels) + 1,
				Group:  g.Key,
				Mode:   m,
				Title:  g.Name,
			})
		}
	}
	idx := make(map[string]int, len(levels))
	for i := range levels {
		idx[levels[i].ID] = i
		if i+1 < len(levels) {
			levels[i].Next = levels[i+1].ID
		}
	}
	return levels, idx
}

// Levels returns all levels in order.
func (c *Curriculum) Levels() []Level {
	return slices.Clone(c.levels)
}

// Level returns the level with the given ID.
func (c *Curriculum) Level(id string) (Level, error) {
	i, ok := c.levelIdx[id]
	if !ok {
		return Level{}, fmt.Errorf("%w: %q", ErrUnknownLevel, id)
	}
	return c.levels[i], nil
}

// NextLevel returns the level after id, or false when id is the last level.
func (c *Curriculum) NextLevel(id string) (Level, bool, error) {
	l, err := c.Level(id)
	if err != nil {
		return Level{}, false, err
	}
	if l.Next == "" {
		return Level{}, false, nil
	}
	next, err := c.Level(l.Next)
	if err != nil {
		return Level{}, false, err
	}
	return next, true, nil
}
