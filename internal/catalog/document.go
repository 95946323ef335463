package catalog

import (
	"fmt"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Document is the external catalog exchange format, used both for
// augmentation at load time and for import/export at runtime.
type Document struct {
	Fingerprints map[string]map[string][]*Template `json:"fingerprints"`
}

// ParseDocument decodes a JSON augmentation document from raw bytes.
func ParseDocument(data []byte) (*Document, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), kjson.Parser()); err != nil {
		return nil, fmt.Errorf("parsing catalog document: %w", err)
	}
	return unmarshalDocument(k)
}

// LoadDocumentFile reads and decodes a JSON augmentation document from disk.
func LoadDocumentFile(path string) (*Document, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
		return nil, fmt.Errorf("loading catalog document from %s: %w", path, err)
	}
	return unmarshalDocument(k)
}

func unmarshalDocument(k *koanf.Koanf) (*Document, error) {
	var doc Document
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("unmarshaling catalog document: %w", err)
	}
	return &doc, nil
}
