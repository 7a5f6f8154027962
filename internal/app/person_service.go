package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/electa/internal/core/audit"
	coreperson "github.com/example/electa/internal/core/person"
	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/ports/secondary"
)

// PersonServiceImpl implements the PersonService interface.
type PersonServiceImpl struct {
	deps Deps
}

// NewPersonService creates a new PersonService with injected dependencies.
func NewPersonService(deps Deps) *PersonServiceImpl {
	return &PersonServiceImpl{deps: deps}
}

// RegisterPerson registers a person owned by the caller.
func (s *PersonServiceImpl) RegisterPerson(ctx context.Context, req primary.RegisterPersonRequest) (*primary.RegisterPersonResponse, error) {
	name := strings.TrimSpace(req.Name)
	surname := strings.TrimSpace(req.Surname)
	nationalID := strings.TrimSpace(req.NationalID)

	var resp *primary.RegisterPersonResponse
	err := s.deps.mutate(ctx, "person_register", []any{"national_id", nationalID}, func(op operation, l *secondary.Ledger) error {
		if err := requireInitialized(l); err != nil {
			return err
		}

		// 1. Guard check
		guardCtx := coreperson.RegisterContext{
			CallerID:        op.caller,
			Name:            name,
			Surname:         surname,
			NationalID:      nationalID,
			NationalIDTaken: nationalIDTaken(l, nationalID),
		}
		if result := coreperson.CanRegister(guardCtx); !result.Allowed {
			return result.Error()
		}

		// 2. Allocate ID and seed one participation slot per existing election
		id := coreperson.GeneratePersonID(l.Seq.Person)
		l.Seq.Person++

		participation := make(map[string]bool, len(l.Elections))
		for electionID := range l.Elections {
			participation[electionID] = false
		}

		record := &secondary.PersonRecord{
			ID:            id,
			Name:          name,
			Surname:       surname,
			NationalID:    nationalID,
			Owner:         op.caller,
			RegisteredAt:  op.now,
			Participation: participation,
		}
		l.Persons[id] = record
		op.record(l, audit.ActionPersonRegister, audit.EntityPerson, id, fmt.Sprintf("%s %s", name, surname))

		resp = &primary.RegisterPersonResponse{PersonID: id, Person: personFromRecord(record)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetPerson retrieves a person by ID.
func (s *PersonServiceImpl) GetPerson(ctx context.Context, personID string) (*primary.Person, error) {
	var person *primary.Person
	err := s.deps.read(ctx, "person_get", []any{"person_id", personID}, func(op operation, l *secondary.Ledger) error {
		if err := requireInitialized(l); err != nil {
			return err
		}
		record, ok := l.Persons[personID]
		if !ok {
			return errNotFound("person", personID)
		}
		person = personFromRecord(record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return person, nil
}

// ListPersons lists every registered person, ordered by ID.
func (s *PersonServiceImpl) ListPersons(ctx context.Context) ([]*primary.Person, error) {
	var persons []*primary.Person
	err := s.deps.read(ctx, "person_list", nil, func(op operation, l *secondary.Ledger) error {
		if err := requireInitialized(l); err != nil {
			return err
		}
		for _, id := range l.SortedPersonIDs() {
			persons = append(persons, personFromRecord(l.Persons[id]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return persons, nil
}

func nationalIDTaken(l *secondary.Ledger, nationalID string) bool {
	for _, p := range l.Persons {
		if p.NationalID == nationalID {
			return true
		}
	}
	return false
}

var _ primary.PersonService = (*PersonServiceImpl)(nil)
