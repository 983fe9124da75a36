package site

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type registryFile struct {
	Sites []Site `yaml:"sites"`
}

// LoadFile reads a YAML registry:
//
//	sites:
//	  - host: strict.test
//	    name: website A
//	    same_site: Strict
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrLoadRegistry, err)
	}
	return Decode(data)
}

// Decode parses a YAML registry document.
func Decode(data []byte) (*Registry, error) {
	var doc registryFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrLoadRegistry, err)
	}
	if len(doc.Sites) == 0 {
		return nil, errors.Join(ErrLoadRegistry, errors.New("no sites defined"))
	}
	return New(doc.Sites...)
}
