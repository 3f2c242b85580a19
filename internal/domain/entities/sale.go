package entities

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

type SaleType string

const (
	SaleTypeDirectPayment SaleType = "DIRECT_PAYMENT"
	SaleTypeFinanced      SaleType = "FINANCED"
)

type SaleStatus string

const (
	SaleStatusReservationPending SaleStatus = "RESERVATION_PENDING"
	SaleStatusPending            SaleStatus = "PENDING"
	SaleStatusPendingApproval    SaleStatus = "PENDING_APPROVAL"
	SaleStatusApproved           SaleStatus = "APPROVED"
	SaleStatusInPaymentProcess   SaleStatus = "IN_PAYMENT_PROCESS"
	SaleStatusCompleted          SaleStatus = "COMPLETED"
	SaleStatusRejected           SaleStatus = "REJECTED"
)

type Collector struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

func (c Collector) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// CollectorAssignment is either unassigned or holds a collector.
//
// The backend sends the collector as null, as a bare name string or as an
// object; the shape is resolved once here so callers only check Assigned().
type CollectorAssignment struct {
	collector *Collector
}

func Unassigned() CollectorAssignment {
	return CollectorAssignment{}
}

func AssignedCollector(c Collector) CollectorAssignment {
	return CollectorAssignment{collector: &c}
}

func (a CollectorAssignment) Assigned() bool {
	return a.collector != nil
}

// Collector returns the assigned collector; ok is false when unassigned.
func (a CollectorAssignment) Collector() (Collector, bool) {
	if a.collector == nil {
		return Collector{}, false
	}
	return *a.collector, true
}

func (a CollectorAssignment) DisplayName() string {
	if a.collector == nil {
		return "Sin asignar"
	}
	return a.collector.FullName()
}

func (a *CollectorAssignment) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*a = Unassigned()
		return nil
	case b[0] == '"':
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			*a = Unassigned()
			return nil
		}
		*a = AssignedCollector(Collector{FirstName: name})
		return nil
	default:
		var c Collector
		if err := json.Unmarshal(b, &c); err != nil {
			return err
		}
		if c.ID == "" && c.FullName() == "" {
			*a = Unassigned()
			return nil
		}
		*a = AssignedCollector(c)
		return nil
	}
}

func (a CollectorAssignment) MarshalJSON() ([]byte, error) {
	if a.collector == nil {
		return []byte("null"), nil
	}
	return json.Marshal(a.collector)
}

// Sale is the backend sale aggregate as this service reads it.
type Sale struct {
	ID          string              `json:"id"`
	Type        SaleType            `json:"type"`
	Status      SaleStatus          `json:"status"`
	TotalAmount Decimal             `json:"totalAmount"`
	Currency    Currency            `json:"currency"`
	Client      *Client             `json:"client,omitempty"`
	Lot         *Lot                `json:"lot,omitempty"`
	Collector   CollectorAssignment `json:"collector"`
	CreatedAt   time.Time           `json:"createdAt"`

	Liner                   *Participant `json:"liner"`
	TelemarketingSupervisor *Participant `json:"telemarketingSupervisor"`
	TelemarketingConfirmer  *Participant `json:"telemarketingConfirmer"`
	Telemarketer            *Participant `json:"telemarketer"`
	FieldManager            *Participant `json:"fieldManager"`
	FieldSupervisor         *Participant `json:"fieldSupervisor"`
	FieldSeller             *Participant `json:"fieldSeller"`
}

func (s *Sale) slot(t ParticipantType) **Participant {
	switch t {
	case ParticipantTypeLiner:
		return &s.Liner
	case ParticipantTypeTelemarketingSupervisor:
		return &s.TelemarketingSupervisor
	case ParticipantTypeTelemarketingConfirmer:
		return &s.TelemarketingConfirmer
	case ParticipantTypeTelemarketer:
		return &s.Telemarketer
	case ParticipantTypeFieldManager:
		return &s.FieldManager
	case ParticipantTypeFieldSupervisor:
		return &s.FieldSupervisor
	case ParticipantTypeFieldSeller:
		return &s.FieldSeller
	}
	return nil
}

// Slot returns the participant assigned to type t, or nil.
func (s *Sale) Slot(t ParticipantType) *Participant {
	if p := s.slot(t); p != nil {
		return *p
	}
	return nil
}

// SetSlot assigns p to type t. Other slots are left untouched.
func (s *Sale) SetSlot(t ParticipantType, p *Participant) bool {
	ptr := s.slot(t)
	if ptr == nil {
		return false
	}
	*ptr = p
	return true
}
