package crushcfg

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownProvider   = errors.New("unknown provider")
	ErrDuplicateProvider = errors.New("duplicate provider")
	ErrEmptyProvider     = errors.New("provider id is empty")
	ErrEmptyModel        = errors.New("model id is empty")
)

// Overrides are operator supplied additions merged over the defaults.
type Overrides struct {
	Providers []Provider       `mapstructure:"providers"`
	Models    map[string]Model `mapstructure:"models"`
}

func (o Overrides) empty() bool {
	return len(o.Providers) == 0 && len(o.Models) == 0
}

/**
 * Build the configuration document from the built-in defaults
 * @param {time.Time} now - instant stamped into updated_at
 * @param {string} version - service version reported in the document
 * @returns {*Document} a freshly allocated document
 * @description
 * - Deterministic apart from updated_at
 * - Nothing is cached between calls
 */
func Build(now time.Time, version string) *Document {
	return &Document{
		Schema:       SchemaURL,
		Version:      version,
		UpdatedAt:    now.UTC().Format(TimestampLayout),
		Providers:    defaultProviders(),
		Models:       defaultModels(),
		RecentModels: defaultRecentModels(),
		Options:      defaultOptions(),
		Skills:       defaultSkills(),
	}
}

/**
 * Build the document and merge operator overrides into it
 * @param {time.Time} now - instant stamped into updated_at
 * @param {string} version - service version
 * @param {Overrides} ov - providers replace defaults with the same id, models replace tiers
 * @returns {*Document} merged document
 * @returns {error} validation error, the document is discarded as a whole
 */
func BuildWithOverrides(now time.Time, version string, ov Overrides) (*Document, error) {
	doc := Build(now, version)
	if ov.empty() {
		return doc, nil
	}
	overridden := make(map[string]struct{}, len(ov.Providers))
	for _, p := range ov.Providers {
		if p.ID == "" {
			return nil, fmt.Errorf("invalid template overrides: %w", ErrEmptyProvider)
		}
		if _, dup := overridden[p.ID]; dup {
			return nil, fmt.Errorf("invalid template overrides: %w: %s", ErrDuplicateProvider, p.ID)
		}
		overridden[p.ID] = struct{}{}
	}
	for _, p := range ov.Providers {
		replaced := false
		for i := range doc.Providers {
			if doc.Providers[i].ID == p.ID {
				doc.Providers[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			doc.Providers = append(doc.Providers, p)
		}
	}
	for tier, m := range ov.Models {
		doc.Models[tier] = m
	}
	if err := Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid template overrides: %w", err)
	}
	return doc, nil
}

// Validate checks that provider ids are unique and that every model tier
// and recent model points at a defined provider.
func Validate(doc *Document) error {
	ids := make(map[string]struct{}, len(doc.Providers))
	for _, p := range doc.Providers {
		if p.ID == "" {
			return ErrEmptyProvider
		}
		if _, dup := ids[p.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateProvider, p.ID)
		}
		ids[p.ID] = struct{}{}
	}
	for tier, m := range doc.Models {
		if m.Model == "" {
			return fmt.Errorf("model tier %q: %w", tier, ErrEmptyModel)
		}
		if _, ok := ids[m.Provider]; !ok {
			return fmt.Errorf("model tier %q: %w %q", tier, ErrUnknownProvider, m.Provider)
		}
	}
	for tier, list := range doc.RecentModels {
		for _, m := range list {
			if _, ok := ids[m.Provider]; !ok {
				return fmt.Errorf("recent model %q in tier %q: %w %q", m.Model, tier, ErrUnknownProvider, m.Provider)
			}
		}
	}
	return nil
}
