package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// newID generates a store-unique identifier of the shape
// {prefix}_{unix-millis}_{random-suffix}.
func (s *Store) newID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", prefix, s.now().UnixMilli(), suffix)
}
