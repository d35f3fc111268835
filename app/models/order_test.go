package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusPending, OrderStatusCompleted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusPending, "shipped", false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
	}

	for _, tc := range cases {
		o := Order{Status: tc.from}
		if got := o.CanTransition(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestOrderItemsScan(t *testing.T) {
	raw := `[{"card_id":1,"name":"Lightning Bolt","price":24.9,"quantity":2}]`

	var fromBytes OrderItems
	if err := fromBytes.Scan([]byte(raw)); err != nil {
		t.Fatalf("scan []byte: %v", err)
	}
	if len(fromBytes) != 1 || fromBytes[0].Name != "Lightning Bolt" {
		t.Errorf("unexpected items: %+v", fromBytes)
	}

	var fromString OrderItems
	if err := fromString.Scan(raw); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if len(fromString) != 1 || fromString[0].Quantity != 2 {
		t.Errorf("unexpected items: %+v", fromString)
	}

	var fromNil OrderItems
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if fromNil != nil {
		t.Errorf("expected nil items, got %+v", fromNil)
	}

	var fromInt OrderItems
	if err := fromInt.Scan(42); err == nil {
		t.Error("expected error for unsupported type")
	}
}
