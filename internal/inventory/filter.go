package inventory

import "strings"

// searchColumns are matched by Filter. Total Stock is deliberately absent.
var searchColumns = []string{ColumnItemName, ColumnColor, ColumnSize, ColumnLength}

// Filter returns the items whose name, color, size or length contains term,
// ignoring case. An empty term matches everything. items is not modified.
func Filter(items []Item, term string) []Item {
	needle := strings.ToLower(term)
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if Matches(item, needle) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether item matches an already lower-cased search term.
func Matches(item Item, needle string) bool {
	if needle == "" {
		return true
	}
	for _, col := range searchColumns {
		if strings.Contains(strings.ToLower(item[col]), needle) {
			return true
		}
	}
	return false
}
