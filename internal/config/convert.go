package config

import (
	"fmt"
	"strconv"
	"strings"
)

// normalizeData turns a TOML data array into literal strings. Integers are
// written in base 10; strings keep their own base prefix.
func normalizeData(entries []any) ([]string, error) {
	out := make([]string, 0, len(entries))
	for i, entry := range entries {
		switch v := entry.(type) {
		case int64:
			out = append(out, strconv.FormatInt(v, 10))
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			out = append(out, s)
		default:
			return nil, fmt.Errorf("data[%d]: unsupported value type %T", i, entry)
		}
	}
	return out, nil
}
