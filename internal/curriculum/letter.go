package curriculum

// Letter is a single symbol of the curriculum. ID is the symbol itself and
// is the stable identifier used by every persisted record.
type Letter struct {
	ID              string   `json:"letter" validate:"required"`
	Transliteration string   `json:"transliteration" validate:"required"`
	Pronunciation   string   `json:"pronunciation,omitempty"`
	Examples        []string `json:"examples,omitempty"`
}

// Group is a curriculum subdivision used for progress aggregation.
type Group struct {
	Key     string   `json:"key" validate:"required"`
	Name    string   `json:"name" validate:"required"`
	Letters []Letter `json:"letters" validate:"dive"`
}

// IDs returns the letter IDs of the group in curriculum order.
func (g Group) IDs() []string {
	ids := make([]string, len(g.Letters))
	for i, l := range g.Letters {
		ids[i] = l.ID
	}
	return ids
}
