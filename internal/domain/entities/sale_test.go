package entities

import (
	"encoding/json"
	"testing"
)

func TestCollectorAssignment_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		assigned bool
		display  string
	}{
		{"null", `null`, false, "Sin asignar"},
		{"empty string", `""`, false, "Sin asignar"},
		{"bare name", `"Carla Ruiz"`, true, "Carla Ruiz"},
		{"object", `{"id":"c1","firstName":"Carla","lastName":"Ruiz"}`, true, "Carla Ruiz"},
		{"empty object", `{}`, false, "Sin asignar"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Sale
			if err := json.Unmarshal([]byte(`{"id":"sale-1","collector":`+tc.raw+`}`), &s); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if s.Collector.Assigned() != tc.assigned || s.Collector.DisplayName() != tc.display {
				t.Fatalf("unexpected collector: assigned=%v display=%q", s.Collector.Assigned(), s.Collector.DisplayName())
			}
		})
	}

	t.Run("missing field is unassigned", func(t *testing.T) {
		var s Sale
		if err := json.Unmarshal([]byte(`{"id":"sale-1"}`), &s); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, ok := s.Collector.Collector(); ok {
			t.Fatalf("expected unassigned")
		}
	})

	t.Run("marshal", func(t *testing.T) {
		b, _ := json.Marshal(Unassigned())
		if string(b) != "null" {
			t.Fatalf("expected null, got %s", b)
		}
		b, _ = json.Marshal(AssignedCollector(Collector{ID: "c1", FirstName: "Carla"}))
		if string(b) != `{"id":"c1","firstName":"Carla"}` {
			t.Fatalf("unexpected json %s", b)
		}
	})
}

func TestSale_Slots(t *testing.T) {
	var s Sale
	p := &Participant{ID: "p1"}
	for _, typ := range ParticipantTypes {
		if !s.SetSlot(typ, p) {
			t.Fatalf("expected slot for %s", typ)
		}
		if s.Slot(typ) != p {
			t.Fatalf("expected %s assigned", typ)
		}
		if typ.FieldName() == "" || typ.Label() == string(typ) {
			t.Fatalf("missing field or label for %s", typ)
		}
	}
	if s.SetSlot("JANITOR", p) || s.Slot("JANITOR") != nil {
		t.Fatalf("expected unknown type rejected")
	}

	s = Sale{}
	s.SetSlot(ParticipantTypeLiner, p)
	if s.FieldSeller != nil || s.Telemarketer != nil {
		t.Fatalf("expected other slots untouched")
	}
}

func TestParseParticipantType(t *testing.T) {
	if typ, ok := ParseParticipantType(" field_seller "); !ok || typ != ParticipantTypeFieldSeller {
		t.Fatalf("unexpected %q %v", typ, ok)
	}
	if _, ok := ParseParticipantType("boss"); ok {
		t.Fatalf("expected unknown type")
	}
	if ParticipantTypeLiner.FieldName() != "linerId" {
		t.Fatalf("unexpected field name")
	}
}
