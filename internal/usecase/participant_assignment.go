package usecase

import (
	"context"
	"errors"
	"strings"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/infrastructure/logger"
	"lotes_backoffice/internal/usecase/interfaces"
)

var (
	ErrInvalidSaleID            = errors.New("invalid sale_id")
	ErrSaleNotFound             = errors.New("sale not found")
	ErrInvalidParticipantType   = errors.New("invalid participant type")
	ErrParticipantTypeRequired  = errors.New("select a participant type first")
	ErrParticipantNotCandidate  = errors.New("participant is not an active candidate for this type")
	ErrParticipantNotChosen     = errors.New("no participant chosen")
	ErrAssignmentInProgress     = errors.New("assignment already in progress")
	ErrInvalidParticipantChoice = errors.New("invalid participant id")
)

type AssignmentState string

const (
	AssignmentNoTypeSelected    AssignmentState = "NO_TYPE_SELECTED"
	AssignmentTypeSelected      AssignmentState = "TYPE_SELECTED"
	AssignmentParticipantChosen AssignmentState = "PARTICIPANT_CHOSEN"
	AssignmentSubmitting        AssignmentState = "SUBMITTING"
	AssignmentSucceeded         AssignmentState = "SUCCEEDED"
	AssignmentFailed            AssignmentState = "FAILED"
)

type AssignmentOutcome string

const (
	OutcomeAssigned AssignmentOutcome = "ASSIGNED"
	// OutcomeInfo means nothing was sent: the participant already holds the slot.
	OutcomeInfo AssignmentOutcome = "INFO"
)

const msgAlreadyAssigned = "El participante seleccionado ya está asignado a esta venta"

// Candidate is an active participant offered for a slot. Current marks the
// sale's present assignee.
type Candidate struct {
	entities.Participant
	Current bool `json:"current"`
}

type AssignmentResult struct {
	Outcome AssignmentOutcome
	Message string
	Sale    entities.Sale
}

// ParticipantAssignment is the assign-participant flow for one sale.
//
// It is not safe for concurrent use; each request builds its own.
type ParticipantAssignment struct {
	api     interfaces.ISalesAPI
	queries *Queries

	sale       entities.Sale
	state      AssignmentState
	typ        entities.ParticipantType
	candidates []Candidate
	chosen     string
}

func NewParticipantAssignment(sale entities.Sale, api interfaces.ISalesAPI, queries *Queries) *ParticipantAssignment {
	return &ParticipantAssignment{api: api, queries: queries, sale: sale, state: AssignmentNoTypeSelected}
}

func (a *ParticipantAssignment) State() AssignmentState { return a.state }

func (a *ParticipantAssignment) Sale() entities.Sale { return a.sale }

func (a *ParticipantAssignment) Type() entities.ParticipantType { return a.typ }

func (a *ParticipantAssignment) Chosen() string { return a.chosen }

// SelectType loads the active candidates for t. Any previous choice is dropped.
func (a *ParticipantAssignment) SelectType(ctx context.Context, t entities.ParticipantType) ([]Candidate, error) {
	if a.state == AssignmentSubmitting {
		return nil, ErrAssignmentInProgress
	}
	if t.FieldName() == "" {
		return nil, ErrInvalidParticipantType
	}
	participants, err := a.queries.ActiveParticipants(ctx, t)
	if err != nil {
		a.Reset()
		return nil, err
	}

	current := a.sale.Slot(t)
	candidates := make([]Candidate, 0, len(participants)+1)
	seenCurrent := false
	for _, p := range participants {
		isCurrent := current != nil && current.ID == p.ID
		seenCurrent = seenCurrent || isCurrent
		candidates = append(candidates, Candidate{Participant: p, Current: isCurrent})
	}
	// an inactive current assignee is still shown
	if current != nil && !seenCurrent {
		candidates = append([]Candidate{{Participant: *current, Current: true}}, candidates...)
	}

	a.typ = t
	a.candidates = candidates
	a.chosen = ""
	a.state = AssignmentTypeSelected
	return candidates, nil
}

func (a *ParticipantAssignment) SelectParticipant(id string) error {
	id = strings.TrimSpace(id)
	switch a.state {
	case AssignmentNoTypeSelected, AssignmentSucceeded:
		return ErrParticipantTypeRequired
	case AssignmentSubmitting:
		return ErrAssignmentInProgress
	}
	if id == "" {
		return ErrInvalidParticipantChoice
	}
	found := false
	for _, c := range a.candidates {
		if c.ID == id {
			found = true
			break
		}
	}
	if !found {
		return ErrParticipantNotCandidate
	}
	a.chosen = id
	a.state = AssignmentParticipantChosen
	return nil
}

// Submit assigns the chosen participant. Choosing the current assignee again
// returns OutcomeInfo without calling the backend. On failure the flow stays in
// AssignmentFailed with its choice so Submit can be retried.
func (a *ParticipantAssignment) Submit(ctx context.Context) (AssignmentResult, error) {
	switch a.state {
	case AssignmentSubmitting:
		return AssignmentResult{}, ErrAssignmentInProgress
	case AssignmentNoTypeSelected, AssignmentSucceeded:
		return AssignmentResult{}, ErrParticipantTypeRequired
	case AssignmentTypeSelected:
		return AssignmentResult{}, ErrParticipantNotChosen
	}
	log := logger.For("participant.usecase")

	if current := a.sale.Slot(a.typ); current != nil && current.ID == a.chosen {
		log.Info().Str("sale_id", a.sale.ID).Str("type", string(a.typ)).Str("participant_id", a.chosen).Msg("participant already assigned; skipping")
		return AssignmentResult{Outcome: OutcomeInfo, Message: msgAlreadyAssigned, Sale: a.sale}, nil
	}

	field := a.typ.FieldName()
	a.state = AssignmentSubmitting
	log.Info().Str("sale_id", a.sale.ID).Str("field", field).Str("participant_id", a.chosen).Msg("assigning participant")
	if err := a.api.AssignParticipant(ctx, a.sale.ID, field, a.chosen); err != nil {
		a.state = AssignmentFailed
		log.Error().Err(err).Str("sale_id", a.sale.ID).Str("field", field).Msg("assign participant failed")
		return AssignmentResult{}, err
	}

	a.queries.Invalidate(ctx, keySale(a.sale.ID))
	for _, c := range a.candidates {
		if c.ID == a.chosen {
			p := c.Participant
			a.sale.SetSlot(a.typ, &p)
			break
		}
	}
	a.state = AssignmentSucceeded
	res := AssignmentResult{Outcome: OutcomeAssigned, Sale: a.sale}
	a.Reset()
	return res, nil
}

// Reset drops the type, candidates and choice.
func (a *ParticipantAssignment) Reset() {
	a.typ = ""
	a.candidates = nil
	a.chosen = ""
	a.state = AssignmentNoTypeSelected
}

// IParticipantAssignmentUseCase exposes the flow to HTTP, one request per step.
type IParticipantAssignmentUseCase interface {
	Sale(ctx context.Context, saleID string) (entities.Sale, error)
	Candidates(ctx context.Context, saleID string, t entities.ParticipantType) ([]Candidate, error)
	Assign(ctx context.Context, saleID string, t entities.ParticipantType, participantID string) (AssignmentResult, error)
}

type ParticipantAssignmentUseCase struct {
	api     interfaces.ISalesAPI
	queries *Queries
}

var _ IParticipantAssignmentUseCase = (*ParticipantAssignmentUseCase)(nil)

func NewParticipantAssignmentUseCase(api interfaces.ISalesAPI, queries *Queries) *ParticipantAssignmentUseCase {
	return &ParticipantAssignmentUseCase{api: api, queries: queries}
}

func (u *ParticipantAssignmentUseCase) Sale(ctx context.Context, saleID string) (entities.Sale, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	sale, err := u.queries.Sale(ctx, saleID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.Sale{}, ErrSaleNotFound
		}
		return entities.Sale{}, err
	}
	if sale.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return sale, nil
}

func (u *ParticipantAssignmentUseCase) Candidates(ctx context.Context, saleID string, t entities.ParticipantType) ([]Candidate, error) {
	sale, err := u.Sale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return NewParticipantAssignment(sale, u.api, u.queries).SelectType(ctx, t)
}

func (u *ParticipantAssignmentUseCase) Assign(ctx context.Context, saleID string, t entities.ParticipantType, participantID string) (AssignmentResult, error) {
	sale, err := u.Sale(ctx, saleID)
	if err != nil {
		return AssignmentResult{}, err
	}
	flow := NewParticipantAssignment(sale, u.api, u.queries)
	if _, err := flow.SelectType(ctx, t); err != nil {
		return AssignmentResult{}, err
	}
	if err := flow.SelectParticipant(participantID); err != nil {
		return AssignmentResult{}, err
	}
	return flow.Submit(ctx)
}
