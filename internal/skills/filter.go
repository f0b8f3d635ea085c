package skills

/**
 * Filter a catalog by category
 * @param {[]Skill} catalog - source table, left untouched
 * @param {string} category - requested category, "" means absent
 * @returns {[]Skill} matching skills in catalog order
 * @description
 * - Absent category returns the whole catalog
 * - Unknown category returns an empty, non-nil slice (clients read total=0)
 * - Known category returns the matching subsequence
 */
func Filter(catalog []Skill, category string) []Skill {
	if category == "" {
		out := make([]Skill, len(catalog))
		copy(out, catalog)
		return out
	}
	if !IsValidCategory(category) {
		return []Skill{}
	}
	out := []Skill{}
	for _, s := range catalog {
		if string(s.Category) == category {
			out = append(out, s)
		}
	}
	return out
}
