package domain

import "testing"

func TestStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if OrderStatus("unknown").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
	if OrderStatus("").Valid() {
		t.Fatalf("expected empty status to be invalid")
	}
}

func TestStatusTransitionTable(t *testing.T) {
	statuses := []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
	allowed := map[OrderStatus]map[OrderStatus]bool{
		StatusPending:    {StatusProcessing: true, StatusCancelled: true},
		StatusProcessing: {StatusShipped: true, StatusCancelled: true},
		StatusShipped:    {StatusDelivered: true, StatusCancelled: true},
		StatusDelivered:  {},
		StatusCancelled:  {},
	}

	// Every (from, to) pair must match the table exactly.
	for _, from := range statuses {
		for _, to := range statuses {
			got := from.CanTransitionTo(to)
			want := allowed[from][to]
			if got != want {
				t.Errorf("%s -> %s: got %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	statuses := []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
	for _, terminal := range []OrderStatus{StatusDelivered, StatusCancelled} {
		for _, to := range statuses {
			if terminal.CanTransitionTo(to) {
				t.Errorf("terminal state %s allowed transition to %s", terminal, to)
			}
		}
	}
}
