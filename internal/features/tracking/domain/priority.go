package domain

import "strings"

// Event priorities measure logistics-lifecycle advancement, not recency. A
// shipment's terminal "delivered" event must win even when intermediate events
// were logged after it by data-entry mistakes, which is why resolution picks
// the priority maximum instead of the last event by timestamp.
const (
	// PriorityUncategorized is the default for events matching no known pattern.
	PriorityUncategorized = 1
	// PriorityWarehouseEntry marks a parcel checked into a warehouse.
	PriorityWarehouseEntry = 2
	// PriorityTransfer marks a transfer between warehouses.
	PriorityTransfer = 3
	// PriorityDispatched marks a parcel dispatched for final transport.
	PriorityDispatched = 4
	// PriorityDelivered marks a terminal delivery event.
	PriorityDelivered = 5
)

// priorityRule maps text patterns to a priority level. An event matches a rule
// when its event name equals any of eventNames, or its kind contains any of
// kindContains, or its detail contains any of detailContains. All matching is
// case-insensitive.
type priorityRule struct {
	priority       int
	eventNames     []string
	kindContains   []string
	detailContains []string
}

// priorityRules reproduces the upstream free-text contract. The table is
// ordered by precedence: rules are evaluated top to bottom and the first hit
// wins. Do not reorder or "clean up" entries without confirming against real
// upstream data; these strings are what the operators' tooling emits today.
var priorityRules = []priorityRule{
	{
		priority: PriorityDelivered,
		// "desconocido" is a legacy sentinel some delivered shipments carry as
		// their event name. It is kept deliberately; removing it reclassifies
		// real historical data.
		eventNames:     []string{"entrega exitosa", "desconocido"},
		kindContains:   []string{"entrega"},
		detailContains: []string{"entrega confirmada", "entrega exitosa"},
	},
	{
		priority:     PriorityDispatched,
		eventNames:   []string{"despachado"},
		kindContains: []string{"despacho"},
	},
	{
		priority:       PriorityTransfer,
		eventNames:     []string{"transferencia"},
		kindContains:   []string{"transferencia"},
		detailContains: []string{"transferido"},
	},
	{
		priority:       PriorityWarehouseEntry,
		eventNames:     []string{"entrada"},
		kindContains:   []string{"entrada"},
		detailContains: []string{"se da entrada"},
	},
}

func (r priorityRule) matches(e HistoryEvent) bool {
	name := strings.ToLower(strings.TrimSpace(e.EventName))
	for _, n := range r.eventNames {
		if name == n {
			return true
		}
	}

	kind := strings.ToLower(e.Kind)
	for _, k := range r.kindContains {
		if strings.Contains(kind, k) {
			return true
		}
	}

	detail := strings.ToLower(e.Detail)
	for _, d := range r.detailContains {
		if strings.Contains(detail, d) {
			return true
		}
	}

	return false
}

// Priority ranks a history event by how far along the logistics lifecycle it
// is. It is total: any event matching no rule gets PriorityUncategorized.
func Priority(e HistoryEvent) int {
	for _, rule := range priorityRules {
		if rule.matches(e) {
			return rule.priority
		}
	}
	return PriorityUncategorized
}
