package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPriority_RuleTable verifies the classification of representative events
// at every priority level.
func TestPriority_RuleTable(t *testing.T) {
	tests := []struct {
		name     string
		event    HistoryEvent
		expected int
	}{
		{"DeliveredByEventName", HistoryEvent{EventName: "Entrega Exitosa"}, PriorityDelivered},
		{"DeliveredByLegacySentinel", HistoryEvent{EventName: "Desconocido"}, PriorityDelivered},
		{"DeliveredByDetailConfirmed", HistoryEvent{Detail: "Entrega confirmada por el destinatario"}, PriorityDelivered},
		{"DeliveredByKind", HistoryEvent{Kind: "entrega"}, PriorityDelivered},
		{"DispatchedByEventName", HistoryEvent{EventName: "Despachado"}, PriorityDispatched},
		{"DispatchedByKind", HistoryEvent{Kind: "despacho aéreo"}, PriorityDispatched},
		{"TransferByEventName", HistoryEvent{EventName: "Transferencia"}, PriorityTransfer},
		{"TransferByDetail", HistoryEvent{Detail: "Transferido del almacén MIAMI a HAVANA"}, PriorityTransfer},
		{"EntryByEventName", HistoryEvent{EventName: "Entrada"}, PriorityWarehouseEntry},
		{"EntryByDetail", HistoryEvent{Detail: "Se da entrada en el almacén MIAMI."}, PriorityWarehouseEntry},
		{"UncategorizedDefault", HistoryEvent{Kind: "nota", EventName: "Comentario", Detail: "llamar al cliente"}, PriorityUncategorized},
		{"EmptyEvent", HistoryEvent{}, PriorityUncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Priority(tt.event))
		})
	}
}

// TestPriority_DeliveredNameWinsRegardlessOfOtherFields verifies that any
// event named "entrega exitosa" is terminal no matter what kind or detail say.
func TestPriority_DeliveredNameWinsRegardlessOfOtherFields(t *testing.T) {
	events := []HistoryEvent{
		{EventName: "entrega exitosa"},
		{EventName: "ENTREGA EXITOSA", Kind: "entrada"},
		{EventName: "Entrega Exitosa", Kind: "despacho", Detail: "Se da entrada en el almacén X"},
		{EventName: "  entrega exitosa  ", Detail: "transferido"},
	}

	for _, e := range events {
		assert.Equal(t, PriorityDelivered, Priority(e))
	}
}

// TestPriority_CaseInsensitive verifies matching ignores case on every field.
func TestPriority_CaseInsensitive(t *testing.T) {
	assert.Equal(t, PriorityDispatched, Priority(HistoryEvent{EventName: "DESPACHADO"}))
	assert.Equal(t, PriorityTransfer, Priority(HistoryEvent{Kind: "TRANSFERENCIA"}))
	assert.Equal(t, PriorityWarehouseEntry, Priority(HistoryEvent{Detail: "SE DA ENTRADA en el almacén Z"}))
}

// TestPriority_PrecedenceFirstMatchWins verifies that an event matching both a
// delivered and a lower pattern classifies as delivered.
func TestPriority_PrecedenceFirstMatchWins(t *testing.T) {
	e := HistoryEvent{
		Kind:   "entrega",
		Detail: "Transferido del almacén MIAMI a HAVANA",
	}
	assert.Equal(t, PriorityDelivered, Priority(e))
}
