package stylist

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/chair-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/models"
	"github.com/BruksfildServices01/chair-scheduler/internal/validators"
)

type CreateStylist struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateStylist(repo domain.Repository, audit audit.Sink) *CreateStylist {
	return &CreateStylist{repo: repo, audit: audit}
}

func (uc *CreateStylist) Execute(ctx context.Context, name string) (*models.Stylist, error) {
	name, err := validators.Required("name", name)
	if err != nil {
		return nil, err
	}

	s := &models.Stylist{
		ID:   uuid.New(),
		Name: name,
	}
	if err := uc.repo.CreateStylist(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   domain.ActionStylistCreated,
		Entity:   domain.EntityStylist,
		EntityID: s.ID.String(),
		Metadata: map[string]any{"name": s.Name},
	})

	return s, nil
}

type ListStylists struct {
	repo domain.Repository
}

func NewListStylists(repo domain.Repository) *ListStylists {
	return &ListStylists{repo: repo}
}

// Execute devolve os profissionais em ordem de nome.
func (uc *ListStylists) Execute(ctx context.Context) ([]models.Stylist, error) {
	return uc.repo.ListStylists(ctx)
}
