package skills

// aliasGroups maps a canonical compact key to the alias phrases that should be
// treated as the same skill. The table is data so new groups can be added and
// unit-tested without touching the matching algorithm.
var aliasGroups = map[string][]string{
	"go":            {"golang", "go lang"},
	"javascript":    {"js", "java script"},
	"typescript":    {"ts", "type script"},
	"vue":           {"vuejs", "vue js", "vue.js"},
	"react":         {"reactjs", "react js", "react.js"},
	"node":          {"nodejs", "node js", "node.js"},
	"nextjs":        {"next js", "next.js"},
	"kubernetes":    {"k8s"},
	"postgresql":    {"postgres", "postgre sql"},
	"mongodb":       {"mongo", "mongo db"},
	"elasticsearch": {"elastic search", "elastic"},
	"aws":           {"amazon web services"},
	"gcp":           {"google cloud", "google cloud platform"},
	"azure":         {"microsoft azure"},
	"csharp":        {"c#", "c sharp"},
	"cplusplus":     {"c++", "cpp"},
	"cicd":          {"ci cd", "ci/cd", "continuous integration"},
	"ml":            {"machine learning"},
}

// aliasIndex maps every normalized and compact form in a group (including the
// canonical key itself) back to the canonical compact key.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]string {
	index := make(map[string]string)
	for canonical, aliases := range aliasGroups {
		index[canonical] = canonical
		for _, alias := range aliases {
			index[NormalizeKey(alias)] = canonical
			index[CompactKey(alias)] = canonical
		}
	}
	return index
}

// Variants returns every string form that should be treated as equivalent to
// the input skill: its normalized and compact keys, and, when the skill
// resolves to an alias group, the canonical key plus every alias's normalized
// and compact forms. Order is deterministic: own keys first, then the group.
func Variants(skill string) []string {
	var variants []string
	seen := make(map[string]struct{})
	add := func(v string) {
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}

	normalized := NormalizeKey(skill)
	compact := CompactKey(skill)
	add(normalized)
	add(compact)

	canonical, ok := aliasIndex[normalized]
	if !ok {
		canonical, ok = aliasIndex[compact]
	}
	if !ok {
		return variants
	}

	add(canonical)
	for _, alias := range aliasGroups[canonical] {
		add(NormalizeKey(alias))
		add(CompactKey(alias))
	}
	return variants
}
