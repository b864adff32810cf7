package curriculum

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type file struct {
	Groups []Group `json:"groups"`
}

// Load parses a JSON curriculum of the form {"groups":[{"key","name","letters":[...]}]}
// and validates it.
func Load(r io.Reader) (*Curriculum, error) {
	var f file
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}
	return New(f.Groups)
}

// LoadFile loads a curriculum from path. An empty path returns the built-in
// Kannada curriculum.
func LoadFile(path string) (*Curriculum, error) {
	if path == "" {
		return Kannada(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open curriculum: %w", err)
	}
	defer f.Close()
	return Load(f)
}
