package entities

import "strings"

// NormalizeSkills turns a comma-separated skills string into the stored
// list: tokens trimmed, empty tokens dropped, lower-cased, and deduplicated
// keeping the first occurrence.
func NormalizeSkills(raw string) []string {
	return normalizeSkillList(strings.Split(raw, ","))
}

func normalizeSkillList(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		skill := strings.ToLower(strings.TrimSpace(tok))
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}
