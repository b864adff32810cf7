package curriculum

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateGroups returns a combined error describing all problems found,
// or nil if the groups are valid.
func validateGroups(groups []Group) error {
	if len(groups) == 0 {
		return fmt.Errorf("%w: no groups", ErrNotReady)
	}

	var errs []string

	for i, g := range groups {
		if err := validate.Struct(g); err != nil {
			errs = append(errs, fmt.Sprintf("group %d (%q): %v", i, g.Key, err))
		}
	}

	keys := make(map[string]bool, len(groups))
	letters := make(map[string]string)
	for _, g := range groups {
		if keys[g.Key] {
			errs = append(errs, fmt.Sprintf("duplicate group key: %q", g.Key))
		}
		keys[g.Key] = true

		// Level IDs are <group>_<mode>, so the separator must stay unambiguous
		// for a key that already ends in a mode name.
		for _, m := range Modes() {
			if strings.HasSuffix(g.Key, "_"+string(m)) {
				errs = append(errs, fmt.Sprintf("group key %q ends in a mode name", g.Key))
			}
		}

		for _, l := range g.Letters {
			if prev, dup := letters[l.ID]; dup && l.ID != "" {
				errs = append(errs, fmt.Sprintf("letter %q appears in both %q and %q", l.ID, prev, g.Key))
				continue
			}
			letters[l.ID] = g.Key
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
