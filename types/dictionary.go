package types

import (
	"fmt"
	"strings"
)

// DictionaryItem is a libav option, e.g. {"preset", "veryfast"}.
type DictionaryItem struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

func (item DictionaryItem) String() string {
	return item.Key + "=" + item.Value
}

// DictionaryItems is an ordered list of libav options. It implements
// pflag.Value, each Set appends one "key=value" item.
type DictionaryItems []DictionaryItem

// Deduplicate keeps only the last value of each key, ordered by the
// position of that last value.
func (s DictionaryItems) Deduplicate() DictionaryItems {
	if s == nil {
		return nil
	}
	lastIdx := make(map[string]int, len(s))
	for idx, item := range s {
		lastIdx[item.Key] = idx
	}
	result := make(DictionaryItems, 0, len(lastIdx))
	for idx, item := range s {
		if lastIdx[item.Key] == idx {
			result = append(result, item)
		}
	}
	return result
}

func (s DictionaryItems) String() string {
	parts := make([]string, 0, len(s))
	for _, item := range s {
		parts = append(parts, item.String())
	}
	return strings.Join(parts, ",")
}

func (s *DictionaryItems) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected 'key=value', got '%s'", v)
	}
	*s = append(*s, DictionaryItem{Key: strings.TrimSpace(key), Value: value})
	return nil
}

func (s *DictionaryItems) Type() string {
	return "key=value"
}
