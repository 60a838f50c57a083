package task

import "sort"

// Active returns the tasks that are not completed, in insertion order.
func Active(l List) List {
	var out List
	for _, t := range l {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Completed returns the tasks that are completed, in insertion order.
func Completed(l List) List {
	var out List
	for _, t := range l {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Filter keeps only tasks matching the given category and priority sets.
// Each set is independently optional: an empty set means no restriction on
// that field. When both are supplied the filters intersect (AND).
func Filter(l List, categories []string, priorities []Priority) List {
	catSet := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		catSet[c] = struct{}{}
	}
	priSet := make(map[Priority]struct{}, len(priorities))
	for _, p := range priorities {
		priSet[p] = struct{}{}
	}

	out := l
	if len(catSet) > 0 {
		var filtered List
		for _, t := range out {
			if _, ok := catSet[t.Category]; ok {
				filtered = append(filtered, t)
			}
		}
		out = filtered
	}
	if len(priSet) > 0 {
		var filtered List
		for _, t := range out {
			if _, ok := priSet[t.Priority]; ok {
				filtered = append(filtered, t)
			}
		}
		out = filtered
	}
	return out
}

// Categories returns the distinct non-empty categories present in l,
// sorted. This is the option list offered to filter interfaces.
func Categories(l List) []string {
	seen := make(map[string]struct{})
	for _, t := range l {
		if t.Category != "" {
			seen[t.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// PrioritiesPresent returns the distinct priorities present in l, ordered
// Low, Medium, High.
func PrioritiesPresent(l List) []Priority {
	seen := make(map[Priority]struct{})
	for _, t := range l {
		seen[t.Priority] = struct{}{}
	}
	var out []Priority
	for _, p := range Priorities() {
		if _, ok := seen[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
