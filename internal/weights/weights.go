// Package weights resolves effective template selection weights from
// per-OS/browser override documents. Documents are authored externally and
// may be partially malformed: parsing is tolerant, and anything that does
// not have the expected shape degrades to a no-op for that entry only.
package weights

import (
	"fmt"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
)

// RangeRule maps a major-version range expression to a weight.
type RangeRule struct {
	Range  string
	Weight float64
}

// PrefixRule maps a version-string prefix to a weight.
type PrefixRule struct {
	Prefix string
	Weight float64
}

// Spec is one OS/browser bucket's override rules. Legacy holds exact-value
// keys written directly on the document object (older documents keyed weights
// by bare major version or version string); the remaining fields are the
// structured rule forms. MajorRanges and VersionPrefixes keep document order.
type Spec struct {
	Legacy          map[string]float64
	Majors          map[string]float64
	Versions        map[string]float64
	MajorRanges     []RangeRule
	VersionPrefixes []PrefixRule
	Default         float64
	Scale           float64
}

// Document maps lowercase OS to lowercase browser to that bucket's Spec.
type Document map[string]map[string]*Spec

// Bucket returns the spec for an OS/browser pair, or nil when the document
// carries no rules for it. Keys are case-normalized.
func (d Document) Bucket(os, browser string) *Spec {
	if d == nil {
		return nil
	}
	browsers, ok := d[strings.ToLower(os)]
	if !ok {
		return nil
	}
	return browsers[strings.ToLower(browser)]
}

// Parse decodes an override document from raw JSON bytes.
//
// The JSON parser is used directly rather than through a koanf instance:
// legacy keys are bare version strings ("121.0.6167.85") and koanf's
// delimiter flattening would split them into nested paths.
func Parse(data []byte) (Document, error) {
	raw, err := kjson.Parser().Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parsing weight overrides: %w", err)
	}
	return fromRaw(raw), nil
}

// LoadFile reads and decodes an override document from disk.
func LoadFile(path string) (Document, error) {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, fmt.Errorf("loading weight overrides from %s: %w", path, err)
	}
	return Parse(data)
}

func fromRaw(raw map[string]any) Document {
	doc := make(Document, len(raw))
	for os, v := range raw {
		browsers, ok := v.(map[string]any)
		if !ok {
			continue
		}
		bucket := make(map[string]*Spec, len(browsers))
		for browser, bv := range browsers {
			specRaw, ok := bv.(map[string]any)
			if !ok {
				continue
			}
			bucket[strings.ToLower(browser)] = specFromRaw(specRaw)
		}
		if len(bucket) > 0 {
			doc[strings.ToLower(os)] = bucket
		}
	}
	return doc
}

func specFromRaw(raw map[string]any) *Spec {
	s := &Spec{
		Legacy:   map[string]float64{},
		Majors:   map[string]float64{},
		Versions: map[string]float64{},
	}
	for key, v := range raw {
		switch key {
		case "majors":
			s.Majors = numberMap(v)
		case "versions":
			s.Versions = numberMap(v)
		case "majorRanges":
			for _, entry := range entryList(v) {
				expr, eok := entry["range"].(string)
				w, wok := toNumber(entry["weight"])
				if eok && wok {
					s.MajorRanges = append(s.MajorRanges, RangeRule{Range: expr, Weight: w})
				}
			}
		case "versionPrefixes":
			for _, entry := range entryList(v) {
				prefix, pok := entry["prefix"].(string)
				w, wok := toNumber(entry["weight"])
				if pok && wok {
					s.VersionPrefixes = append(s.VersionPrefixes, PrefixRule{Prefix: prefix, Weight: w})
				}
			}
		case "default":
			if w, ok := toNumber(v); ok {
				s.Default = w
			}
		case "scale":
			if w, ok := toNumber(v); ok {
				s.Scale = w
			}
		default:
			// Anything else numeric is a legacy exact-value key.
			if w, ok := toNumber(v); ok {
				s.Legacy[key] = w
			}
		}
	}
	return s
}

func numberMap(v any) map[string]float64 {
	out := map[string]float64{}
	m, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for key, raw := range m {
		if w, ok := toNumber(raw); ok {
			out[key] = w
		}
	}
	return out
}

func entryList(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, e := range list {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
