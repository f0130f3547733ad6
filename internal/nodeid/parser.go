// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/lazyframe/internal/dagerr"
)

// Validate checks that name can key a node. Column names coming from real
// tables may contain spaces or punctuation, so only blank names are refused.
func Validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return dagerr.ErrEmptyName
	}
	return nil
}

// Parse turns a raw, possibly padded, name into a Ref.
func Parse(raw string) (Ref, error) {
	name := strings.TrimSpace(raw)
	if err := Validate(name); err != nil {
		return "", fmt.Errorf("invalid reference %q: %w", raw, err)
	}
	return Ref(name), nil
}

// ParseList splits a comma separated list of names, dropping empty entries.
func ParseList(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
