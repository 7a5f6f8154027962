package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/electa/internal/core/calendar"
	"github.com/example/electa/internal/ports/primary"
)

// ElectionAdapter translates CLI operations to ElectionService calls.
type ElectionAdapter struct {
	service primary.ElectionService
	out     io.Writer
}

// NewElectionAdapter creates a new ElectionAdapter with the given service.
func NewElectionAdapter(service primary.ElectionService, out io.Writer) *ElectionAdapter {
	return &ElectionAdapter{service: service, out: out}
}

// Create creates an election; start and end use YYYY-MM-DD[ HH:MM[:SS]].
func (a *ElectionAdapter) Create(ctx context.Context, title, start, end string) error {
	startDate, err := calendar.ParseDate(start)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	endDate, err := calendar.ParseDate(end)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}

	resp, err := a.service.CreateElection(ctx, primary.CreateElectionRequest{
		Title: title,
		Start: startDate,
		End:   endDate,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created election %s: %s\n", resp.ElectionID, resp.Election.Title)
	return nil
}

// Start opens an election.
func (a *ElectionAdapter) Start(ctx context.Context, electionID string) error {
	if err := a.service.StartElection(ctx, electionID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Election %s is open\n", electionID)
	return nil
}

// Finalize closes an election.
func (a *ElectionAdapter) Finalize(ctx context.Context, electionID string) error {
	if err := a.service.FinalizeElection(ctx, electionID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Election %s is closed\n", electionID)
	return nil
}

// Delete removes an election.
func (a *ElectionAdapter) Delete(ctx context.Context, electionID string) error {
	if err := a.service.DeleteElection(ctx, electionID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Election %s deleted\n", electionID)
	return nil
}

// Show displays an election with its participant lists.
func (a *ElectionAdapter) Show(ctx context.Context, electionID string) error {
	e, found, err := a.service.GetElection(ctx, electionID)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(a.out, "No election %s\n", electionID)
		return nil
	}

	printElection(a.out, e)
	return nil
}

// List lists elections with an optional status filter.
func (a *ElectionAdapter) List(ctx context.Context, status string) error {
	elections, err := a.service.ListElections(ctx, primary.ElectionFilters{Status: status})
	if err != nil {
		return fmt.Errorf("failed to list elections: %w", err)
	}

	if len(elections) == 0 {
		fmt.Fprintln(a.out, "No elections found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-8s %-19s %-19s %s\n", "ID", "STATUS", "START", "END", "TITLE")
	fmt.Fprintln(a.out, rule)
	for _, e := range elections {
		// Pad before colouring so escape codes do not break alignment.
		fmt.Fprintf(a.out, "%-10s %s %-19s %-19s %s\n", e.ID, colorStatus(fmt.Sprintf("%-8s", e.Status)), formatTime(e.Start), formatTime(e.End), e.Title)
	}
	fmt.Fprintln(a.out)
	return nil
}

func printElection(out io.Writer, e *primary.Election) {
	fmt.Fprintf(out, "\nElection: %s\n", e.ID)
	fmt.Fprintf(out, "Title:    %s\n", e.Title)
	fmt.Fprintf(out, "Status:   %s\n", colorStatus(e.Status))
	fmt.Fprintf(out, "Window:   %s .. %s\n", formatTime(e.Start), formatTime(e.End))

	if len(e.Candidates) > 0 {
		fmt.Fprintln(out, "Candidates:")
		for _, c := range e.Candidates {
			fmt.Fprintf(out, "  %d. %-12s %s %s (%d votes)\n", c.Position, c.PersonID, c.Name, c.Surname, c.Votes)
		}
	}
	if len(e.Voters) > 0 {
		fmt.Fprintln(out, "Voters:")
		for _, v := range e.Voters {
			fmt.Fprintf(out, "  %-12s %s %s (voted: %s)\n", v.PersonID, v.Name, v.Surname, yesNo(v.HasVoted))
		}
	}
	printPending(out, "Pending candidates:", e.PendingCandidates)
	printPending(out, "Pending voters:", e.PendingVoters)
	fmt.Fprintln(out)
}

func printPending(out io.Writer, heading string, participants []*primary.Participant) {
	if len(participants) == 0 {
		return
	}
	fmt.Fprintln(out, heading)
	for _, p := range participants {
		fmt.Fprintf(out, "  %-12s %s %s\n", p.PersonID, p.Name, p.Surname)
	}
}
