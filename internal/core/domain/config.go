package domain

import (
	"encoding/json"

	"go.trai.ch/zerr"
)

// Config is a structured configuration value decoded from a JSON object.
type Config map[string]any

// ParseConfig decodes a JSON object.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.Wrap(err, ErrConfigParseFailed.Error())
	}
	if cfg == nil {
		return nil, ErrConfigNotObject
	}
	return cfg, nil
}

// Merge deep-merges src into dst and returns dst.
//
// Arrays present on both sides are concatenated (dst first), objects present on both
// sides are merged recursively, and any other value from src replaces the one in dst.
// A nil src value never replaces an object in dst.
func Merge(dst, src Config) Config {
	if dst == nil {
		dst = make(Config, len(src))
	}
	for key, srcVal := range src {
		dstVal, exists := dst[key]
		if !exists {
			dst[key] = srcVal
			continue
		}

		dstSlice, dstIsSlice := dstVal.([]any)
		srcSlice, srcIsSlice := srcVal.([]any)
		if dstIsSlice && srcIsSlice {
			merged := make([]any, 0, len(dstSlice)+len(srcSlice))
			merged = append(merged, dstSlice...)
			dst[key] = append(merged, srcSlice...)
			continue
		}

		if dstMap, ok := asConfig(dstVal); ok {
			if srcVal == nil {
				continue
			}
			if srcMap, ok := asConfig(srcVal); ok {
				dst[key] = Merge(dstMap, srcMap)
				continue
			}
		}

		dst[key] = srcVal
	}
	return dst
}

func asConfig(v any) (Config, bool) {
	switch m := v.(type) {
	case Config:
		return m, true
	case map[string]any:
		return Config(m), true
	default:
		return nil, false
	}
}
