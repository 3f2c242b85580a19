package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"lotes_backoffice/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidLeadID       = errors.New("invalid lead id")
	ErrLeadWithoutDocument = errors.New("lead has no document")
)

// ValidationError carries per-field messages for inline rendering.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, m := range e.Fields {
		parts = append(parts, f+": "+m)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

var documentPattern = regexp.MustCompile(`^[0-9A-Za-z]{8,12}$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("document", func(fl validator.FieldLevel) bool {
			return documentPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// clientInfoSubmission is the validated shape of the client step.
type clientInfoSubmission struct {
	LeadID           string                     `json:"leadId" validate:"required"`
	ClientID         int                        `json:"clientId" validate:"required,gt=0"`
	Address          string                     `json:"address" validate:"required,min=5,max=250"`
	Guarantor        *entities.Guarantor        `json:"guarantor"`
	SecondaryClients []entities.SecondaryClient `json:"secondaryClients" validate:"max=5,dive"`
}

// ClientInfoInput is the form as posted by the user.
type ClientInfoInput struct {
	Address          *string
	Guarantor        *entities.Guarantor
	SecondaryClients []entities.SecondaryClient
}

// ClientInfoForm binds a lead selection to the client lookup and assembles Step4Data.
type ClientInfoForm struct {
	draft   entities.ClientInfoDraft
	queries *Queries
}

func NewClientInfoForm(draft entities.ClientInfoDraft, queries *Queries) *ClientInfoForm {
	if draft.SecondaryClients == nil {
		draft.SecondaryClients = []entities.SecondaryClient{}
	}
	return &ClientInfoForm{draft: draft, queries: queries}
}

func (f *ClientInfoForm) Draft() entities.ClientInfoDraft {
	return f.draft
}

// HandleLeadSelect sets the lead, then looks its client up by document. The
// first time a client resolves for a lead its address fills the form; a
// manual edit made after that is never overwritten.
func (f *ClientInfoForm) HandleLeadSelect(ctx context.Context, leadID string) error {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return ErrInvalidLeadID
	}
	lead, err := f.queries.Lead(ctx, leadID)
	if err != nil {
		return err
	}

	sameLead := f.draft.LeadID == leadID
	f.draft.LeadID = leadID
	f.draft.LeadName = lead.FullName()
	f.draft.LeadDocument = lead.Document
	if !sameLead {
		f.draft.ClientID = 0
		f.draft.AddressEdited = false
	}
	if lead.Document == "" {
		return ErrLeadWithoutDocument
	}

	client, err := f.queries.ClientByDocument(ctx, lead.Document)
	if err != nil {
		// the lead stays selected; the client id is simply unresolved
		return fmt.Errorf("client lookup: %w", err)
	}
	if client == nil {
		f.draft.ClientID = 0
		return nil
	}
	f.draft.ClientID = client.ID
	if client.Address != "" && f.draft.AddressAutofilledFor != leadID {
		f.draft.Address = client.Address
		f.draft.AddressAutofilledFor = leadID
		f.draft.AddressEdited = false
	}
	return nil
}

func (f *ClientInfoForm) SetAddress(address string) {
	f.draft.Address = strings.TrimSpace(address)
	f.draft.AddressEdited = true
}

// ToggleGuarantor enables the guarantor section; turning it off clears it.
func (f *ClientInfoForm) ToggleGuarantor(on bool) {
	f.draft.GuarantorEnabled = on
	if !on {
		f.draft.Guarantor = nil
	}
}

// ToggleSecondaryClients enables the secondary clients section; turning it off clears it.
func (f *ClientInfoForm) ToggleSecondaryClients(on bool) {
	f.draft.SecondaryClientsEnabled = on
	if !on {
		f.draft.SecondaryClients = []entities.SecondaryClient{}
	}
}

// Apply copies posted values into the draft. Sections that are toggled off ignore their values.
func (f *ClientInfoForm) Apply(in ClientInfoInput) {
	if in.Address != nil && strings.TrimSpace(*in.Address) != f.draft.Address {
		f.SetAddress(*in.Address)
	}
	if f.draft.GuarantorEnabled && in.Guarantor != nil {
		g := *in.Guarantor
		f.draft.Guarantor = &g
	}
	if f.draft.SecondaryClientsEnabled && in.SecondaryClients != nil {
		f.draft.SecondaryClients = append([]entities.SecondaryClient{}, in.SecondaryClients...)
	}
}

// HandleSubmit validates the draft, assembles Step4Data and hands it to onSubmit.
// It performs no network call.
func (f *ClientInfoForm) HandleSubmit(onSubmit func(entities.Step4Data) error) error {
	sub := clientInfoSubmission{
		LeadID:           f.draft.LeadID,
		ClientID:         f.draft.ClientID,
		Address:          f.draft.Address,
		SecondaryClients: f.draft.SecondaryClients,
	}
	if f.draft.GuarantorEnabled {
		sub.Guarantor = f.draft.Guarantor
	}

	fields := map[string]string{}
	if err := formValidator().Struct(sub); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields[fieldPath(fe.Namespace())] = fieldMessage(fe)
		}
	}
	if f.draft.GuarantorEnabled && f.draft.Guarantor == nil {
		fields["guarantor"] = "required"
	}
	if f.draft.SecondaryClientsEnabled && len(f.draft.SecondaryClients) == 0 {
		fields["secondaryClients"] = "at least one secondary client is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	data := entities.Step4Data{
		LeadID:           f.draft.LeadID,
		LeadName:         f.draft.LeadName,
		LeadDocument:     f.draft.LeadDocument,
		ClientID:         f.draft.ClientID,
		Address:          f.draft.Address,
		SecondaryClients: append([]entities.SecondaryClient{}, f.draft.SecondaryClients...),
	}
	if sub.Guarantor != nil {
		g := *sub.Guarantor
		data.Guarantor = &g
	}
	return onSubmit(data)
}

// fieldPath drops the root struct name: "clientInfoSubmission.guarantor.document" -> "guarantor.document".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	if fe.Field() == "clientId" {
		return "no client found for the lead document"
	}
	switch fe.Tag() {
	case "required":
		return "required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " characters"
	case "max":
		return "must have at most " + fe.Param() + " items/characters"
	case "email":
		return "invalid email"
	case "document":
		return "invalid document number"
	case "oneof":
		return "must be one of " + fe.Param()
	}
	return "invalid value"
}
