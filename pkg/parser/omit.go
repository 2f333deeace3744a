package parser

import (
	"strings"

	"github.com/cmmoran/prismaconvert/internal/model"
)

// isTypeExcluded checks Options.ExcludeTypes (stored as lowercase) against the name.
func isTypeExcluded(name string, opts *Options) bool {
	if len(opts.ExcludeTypes) == 0 || name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, t := range opts.ExcludeTypes {
		if t == lower {
			return true
		}
	}
	return false
}

// omitExcluded drops excluded models and enums, keeping source order.
func omitExcluded(models model.Models, enums model.Enums, opts *Options) (model.Models, model.Enums) {
	if len(opts.ExcludeTypes) == 0 {
		return models, enums
	}

	keptModels := make(model.Models, 0, len(models))
	for _, m := range models {
		if m == nil || isTypeExcluded(m.Name, opts) {
			continue
		}
		keptModels = append(keptModels, m)
	}

	keptEnums := make(model.Enums, 0, len(enums))
	for _, e := range enums {
		if e == nil || isTypeExcluded(e.Name, opts) {
			continue
		}
		keptEnums = append(keptEnums, e)
	}

	return keptModels, keptEnums
}
