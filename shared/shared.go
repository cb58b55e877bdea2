package shared

import (
	"strings"
)

// BuildCacheKey joins a key prefix and its parts with ":" into a redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}
