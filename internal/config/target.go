package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTarget reads a search target typed by the user. Anything that is not
// an integer falls back to def.
func ParseTarget(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// ParseData reads a comma or space separated list of integers.
func ParseData(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q in data", f)
		}
		out = append(out, v)
	}
	return out, nil
}
