package skills

import (
	"fmt"
	"regexp"
)

// Category groups skills by the kind of work they help with.
type Category string

const (
	CategoryCreative Category = "creative"
	CategoryDesign   Category = "design"
	CategoryDocs     Category = "docs"
	CategoryDev      Category = "dev"
)

// Categories is the closed set of valid categories, in display order.
var Categories = []Category{CategoryCreative, CategoryDesign, CategoryDocs, CategoryDev}

/**
 * Skill describes one capability exposed to the assistant runtime
 * @property {string} name - unique kebab-case identifier
 * @property {string} description - non-empty human readable summary
 * @property {bool} enabled - whether clients should turn it on by default
 * @property {Category} category - one of Categories
 */
type Skill struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
	Category    Category `json:"category"`
}

// Catalog is the built-in skill table. It is never mutated after start.
var Catalog = []Skill{
	{Name: "think", Description: "Extended thinking and reasoning capabilities for complex problem solving", Enabled: true, Category: CategoryCreative},
	{Name: "brainstorm", Description: "Generate creative ideas and explore multiple solutions", Enabled: true, Category: CategoryCreative},

	{Name: "ui-design", Description: "User interface design patterns and best practices", Enabled: true, Category: CategoryDesign},
	{Name: "system-design", Description: "System architecture and design principles", Enabled: true, Category: CategoryDesign},
	{Name: "api-design", Description: "RESTful API design and documentation", Enabled: true, Category: CategoryDesign},

	{Name: "markdown", Description: "Markdown formatting and documentation writing", Enabled: true, Category: CategoryDocs},
	{Name: "readme-writer", Description: "Generate comprehensive README files for projects", Enabled: true, Category: CategoryDocs},
	{Name: "changelog", Description: "Generate and maintain changelog documentation", Enabled: true, Category: CategoryDocs},

	{Name: "code-review", Description: "Code review assistance and best practice suggestions", Enabled: true, Category: CategoryDev},
	{Name: "refactor", Description: "Code refactoring and optimization suggestions", Enabled: true, Category: CategoryDev},
	{Name: "test-writer", Description: "Generate unit tests and test cases", Enabled: true, Category: CategoryDev},
	{Name: "debug", Description: "Debugging assistance and error analysis", Enabled: true, Category: CategoryDev},
}

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// IsValidName reports whether name follows the kebab-case grammar.
func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

// IsValidCategory reports whether c belongs to Categories.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if string(known) == c {
			return true
		}
	}
	return false
}

// Names returns the skill names in catalog order.
func Names(catalog []Skill) []string {
	names := make([]string, 0, len(catalog))
	for _, s := range catalog {
		names = append(names, s.Name)
	}
	return names
}

/**
 * Check the construction-time invariants of a catalog
 * @param {[]Skill} catalog - table to check
 * @returns {error} first violation found, nil if the catalog is well formed
 * @description
 * - Names must be unique and kebab-case
 * - Descriptions must not be empty
 * - Categories must belong to Categories
 */
func Validate(catalog []Skill) error {
	seen := make(map[string]struct{}, len(catalog))
	for i, s := range catalog {
		if !IsValidName(s.Name) {
			return fmt.Errorf("skill #%d: invalid name %q", i, s.Name)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("skill #%d: duplicate name %q", i, s.Name)
		}
		seen[s.Name] = struct{}{}
		if s.Description == "" {
			return fmt.Errorf("skill %q: empty description", s.Name)
		}
		if !IsValidCategory(string(s.Category)) {
			return fmt.Errorf("skill %q: unknown category %q", s.Name, s.Category)
		}
	}
	return nil
}
