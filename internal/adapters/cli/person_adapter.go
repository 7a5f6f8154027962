package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/example/electa/internal/ports/primary"
)

// PersonAdapter translates CLI operations to PersonService calls.
type PersonAdapter struct {
	service primary.PersonService
	out     io.Writer
}

// NewPersonAdapter creates a new PersonAdapter with the given service.
func NewPersonAdapter(service primary.PersonService, out io.Writer) *PersonAdapter {
	return &PersonAdapter{service: service, out: out}
}

// Register registers a person owned by the caller.
func (a *PersonAdapter) Register(ctx context.Context, name, surname, nationalID string) error {
	resp, err := a.service.RegisterPerson(ctx, primary.RegisterPersonRequest{
		Name:       name,
		Surname:    surname,
		NationalID: nationalID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Registered person %s: %s %s\n", resp.PersonID, resp.Person.Name, resp.Person.Surname)
	return nil
}

// Show displays one person and their participation slots.
func (a *PersonAdapter) Show(ctx context.Context, personID string) error {
	p, err := a.service.GetPerson(ctx, personID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nPerson:      %s\n", p.ID)
	fmt.Fprintf(a.out, "Name:        %s %s\n", p.Name, p.Surname)
	fmt.Fprintf(a.out, "National ID: %s\n", p.NationalID)
	fmt.Fprintf(a.out, "Owner:       %s\n", p.Owner)
	fmt.Fprintf(a.out, "Registered:  %s\n", formatTime(p.RegisteredAt))

	elections := make([]string, 0, len(p.Participation))
	for id := range p.Participation {
		elections = append(elections, id)
	}
	sort.Strings(elections)
	if len(elections) > 0 {
		fmt.Fprintln(a.out, "Participation:")
		for _, id := range elections {
			fmt.Fprintf(a.out, "  %-12s %s\n", id, yesNo(p.Participation[id]))
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

// List lists every registered person.
func (a *PersonAdapter) List(ctx context.Context) error {
	persons, err := a.service.ListPersons(ctx)
	if err != nil {
		return fmt.Errorf("failed to list persons: %w", err)
	}

	if len(persons) == 0 {
		fmt.Fprintln(a.out, "No persons found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-12s %-24s %-14s %s\n", "ID", "NAME", "NATIONAL ID", "OWNER")
	fmt.Fprintln(a.out, rule)
	for _, p := range persons {
		fmt.Fprintf(a.out, "%-12s %-24s %-14s %s\n", p.ID, p.Name+" "+p.Surname, p.NationalID, p.Owner)
	}
	fmt.Fprintln(a.out)
	return nil
}
