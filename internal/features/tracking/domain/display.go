package domain

// FilterAll is the sentinel for "no filter selected".
const FilterAll = "all"

// displayStatuses maps backend status labels to the labels the back office
// shows. Applied at presentation time only; filtering and comparisons always
// operate on the pre-normalization value.
var displayStatuses = map[string]string{
	"Recibido": "En Almacén",
}

// DisplayStatus returns the user-facing label for a status, identity for any
// status without a mapping.
func DisplayStatus(status string) string {
	if label, ok := displayStatuses[status]; ok {
		return label
	}
	return status
}

// NormalizeFilter resets a filter selection that no longer appears in the
// freshly computed facet set, so a stale value is never presented as active.
func NormalizeFilter(selected string, available []string) string {
	if selected == "" || selected == FilterAll {
		return FilterAll
	}
	for _, v := range available {
		if v == selected {
			return selected
		}
	}
	return FilterAll
}
