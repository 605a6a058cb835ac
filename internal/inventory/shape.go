package inventory

import "strings"

// Shape turns raw worksheet rows into a Response. Row 0 is the header; data
// starts at FirstDataRow. Headers are matched case-insensitively after
// trimming, and only the columns actually found are reported.
func Shape(rows [][]string) Response {
	if len(rows) == 0 {
		return Empty()
	}

	indices := columnIndices(rows[0])

	headers := make([]string, 0, len(indices))
	for _, col := range RequiredColumns {
		if _, ok := indices[col]; ok {
			headers = append(headers, col)
		}
	}

	data := []Item{}
	for r := FirstDataRow; r < len(rows); r++ {
		item := make(Item, len(headers))
		for _, col := range headers {
			item[col] = cell(rows[r], indices[col])
		}
		if !blank(item) {
			data = append(data, item)
		}
	}

	return Response{Data: data, Headers: headers}
}

func columnIndices(header []string) map[string]int {
	indices := make(map[string]int, len(RequiredColumns))
	for _, col := range RequiredColumns {
		want := strings.ToLower(strings.TrimSpace(col))
		for i, h := range header {
			if strings.ToLower(strings.TrimSpace(h)) == want {
				indices[col] = i
				break
			}
		}
	}
	return indices
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func blank(item Item) bool {
	for _, v := range item {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
