package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cmmoran/prismaconvert/internal/model"
)

// Document is the serialized form of one conversion's records.
type Document struct {
	Models []*model.Model `yaml:"models" json:"models"`
	Enums  []*model.Enum  `yaml:"enums" json:"enums"`
}

// YAML dumps the extracted records.
func YAML(models []*model.Model, enums []*model.Enum) ([]byte, error) {
	doc := Document{Models: models, Enums: enums}
	if doc.Models == nil {
		doc.Models = []*model.Model{}
	}
	if doc.Enums == nil {
		doc.Enums = []*model.Enum{}
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	return data, nil
}
