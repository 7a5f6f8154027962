package primary

import "context"

// PersonService defines the primary port for the person registry.
type PersonService interface {
	// RegisterPerson registers a person owned by the caller.
	RegisterPerson(ctx context.Context, req RegisterPersonRequest) (*RegisterPersonResponse, error)

	// GetPerson retrieves a person by ID.
	GetPerson(ctx context.Context, personID string) (*Person, error)

	// ListPersons lists every registered person, ordered by ID.
	ListPersons(ctx context.Context) ([]*Person, error)
}

// RegisterPersonRequest contains the parameters for registering a person.
type RegisterPersonRequest struct {
	Name       string
	Surname    string
	NationalID string
}

// RegisterPersonResponse contains the result of registering a person.
type RegisterPersonResponse struct {
	PersonID string
	Person   *Person
}

// Person represents a registered person at the port boundary.
type Person struct {
	ID           string
	Name         string
	Surname      string
	NationalID   string
	Owner        string
	RegisteredAt int64
	// Participation maps every existing election ID to whether the person holds a role in it.
	Participation map[string]bool
}
