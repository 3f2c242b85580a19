package entities

import "strings"

// ParticipantType is a staff role that can be attached to a sale.
type ParticipantType string

const (
	ParticipantTypeLiner                   ParticipantType = "LINER"
	ParticipantTypeTelemarketingSupervisor ParticipantType = "TELEMARKETING_SUPERVISOR"
	ParticipantTypeTelemarketingConfirmer  ParticipantType = "TELEMARKETING_CONFIRMER"
	ParticipantTypeTelemarketer            ParticipantType = "TELEMARKETER"
	ParticipantTypeFieldManager            ParticipantType = "FIELD_MANAGER"
	ParticipantTypeFieldSupervisor         ParticipantType = "FIELD_SUPERVISOR"
	ParticipantTypeFieldSeller             ParticipantType = "FIELD_SELLER"
)

// ParticipantTypes lists the seven sale slots in display order.
var ParticipantTypes = []ParticipantType{
	ParticipantTypeLiner,
	ParticipantTypeTelemarketingSupervisor,
	ParticipantTypeTelemarketingConfirmer,
	ParticipantTypeTelemarketer,
	ParticipantTypeFieldManager,
	ParticipantTypeFieldSupervisor,
	ParticipantTypeFieldSeller,
}

// participantFields maps each type to the sale foreign-key field the backend expects.
var participantFields = map[ParticipantType]string{
	ParticipantTypeLiner:                   "linerId",
	ParticipantTypeTelemarketingSupervisor: "telemarketingSupervisorId",
	ParticipantTypeTelemarketingConfirmer:  "telemarketingConfirmerId",
	ParticipantTypeTelemarketer:            "telemarketerId",
	ParticipantTypeFieldManager:            "fieldManagerId",
	ParticipantTypeFieldSupervisor:         "fieldSupervisorId",
	ParticipantTypeFieldSeller:             "fieldSellerId",
}

var participantLabels = map[ParticipantType]string{
	ParticipantTypeLiner:                   "Liner",
	ParticipantTypeTelemarketingSupervisor: "Supervisor de Telemarketing",
	ParticipantTypeTelemarketingConfirmer:  "Confirmador de Telemarketing",
	ParticipantTypeTelemarketer:            "Telemarketer",
	ParticipantTypeFieldManager:            "Jefe de Campo",
	ParticipantTypeFieldSupervisor:         "Supervisor de Campo",
	ParticipantTypeFieldSeller:             "Vendedor de Campo",
}

func ParseParticipantType(s string) (ParticipantType, bool) {
	t := ParticipantType(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := participantFields[t]
	return t, ok
}

// FieldName returns the sale foreign-key field for t, or "" for an unknown type.
func (t ParticipantType) FieldName() string {
	return participantFields[t]
}

func (t ParticipantType) Label() string {
	if l, ok := participantLabels[t]; ok {
		return l
	}
	return string(t)
}

type Participant struct {
	ID        string          `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Document  string          `json:"document,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Type      ParticipantType `json:"participantType"`
	IsActive  bool            `json:"isActive"`
}

func (p Participant) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
