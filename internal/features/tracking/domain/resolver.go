package domain

import (
	"regexp"
	"sort"
	"strings"
)

// Status overrides produced by the resolver. These are the only two labels the
// resolver ever substitutes for the declared status; lower-priority events
// leave the declared status untouched.
const (
	// StatusDelivered is the terminal status label.
	StatusDelivered = "Entregado"
	// StatusDispatched is the in-transit status label.
	StatusDispatched = "Despachado"
)

// ResolveStatus derives the effective status of a shipment from its history.
// With an empty history the declared status passes through unchanged.
// Otherwise the event with the strictly greatest priority wins, first
// occurrence breaking ties, and only delivered or dispatched winners override
// the declared status.
func ResolveStatus(s Shipment) string {
	if len(s.History) == 0 {
		return s.DeclaredStatus
	}

	best := Priority(s.History[0])
	for _, e := range s.History[1:] {
		if p := Priority(e); p > best {
			best = p
		}
	}

	switch best {
	case PriorityDelivered:
		return StatusDelivered
	case PriorityDispatched:
		return StatusDispatched
	default:
		return s.DeclaredStatus
	}
}

// warehousePatterns extracts a warehouse name from an event's detail text.
// Patterns are tried in order per event and the first match wins, so the
// transfer-with-destination form must come before the bare transfer form.
// The capture group is always the warehouse the parcel ended up in.
var warehousePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)se da entrada en el almac[eé]n\s+(.+)`),
	regexp.MustCompile(`(?i)transferido del almac[eé]n\s+(?:.+?)\s+a\s+(.+)`),
	regexp.MustCompile(`(?i)transferido del almac[eé]n\s+(.+)`),
}

// ExtractWarehouse pulls a warehouse name out of a single event's detail.
// The capture is truncated at the first "." and trimmed; malformed or missing
// detail text simply yields "".
func ExtractWarehouse(e HistoryEvent) string {
	for _, p := range warehousePatterns {
		m := p.FindStringSubmatch(e.Detail)
		if m == nil {
			continue
		}

		name := m[1]
		if dot := strings.Index(name, "."); dot >= 0 {
			name = name[:dot]
		}
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	return ""
}

// ResolveWarehouse derives the shipment's current warehouse: among the events
// whose detail yields a warehouse name, the one with the highest priority
// wins, ties broken by original history order. Returns "" when no event
// yields a name.
//
// Warehouse selection is independent from status selection over the same
// priority function: a low-priority entrada event can still supply the
// warehouse when the higher-priority dispatch event carries none.
func ResolveWarehouse(s Shipment) string {
	var (
		winner   string
		winnerPr int
	)
	for _, e := range s.History {
		name := ExtractWarehouse(e)
		if name == "" {
			continue
		}
		if p := Priority(e); p > winnerPr {
			winner, winnerPr = name, p
		}
	}
	return winner
}

// Warehouses returns every distinct warehouse name extractable from the
// shipment's history, in first-seen order. Used for filter facets; unlike
// ResolveWarehouse it keeps all candidates, not just the winning one.
func Warehouses(s Shipment) []string {
	var (
		names []string
		seen  = make(map[string]bool)
	)
	for _, e := range s.History {
		name := ExtractWarehouse(e)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// AllWarehouses returns the sorted union of warehouse names across shipments.
// It populates the warehouse filter dropdown and must be recomputed whenever
// the active manifest selection changes.
func AllWarehouses(shipments []Shipment) []string {
	var (
		names []string
		seen  = make(map[string]bool)
	)
	for _, s := range shipments {
		for _, name := range Warehouses(s) {
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
