package store

import (
	"context"

	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the persistence surface the services depend on. All reads of
// missing rows come back as constants.ErrDBNotFound.
type Store interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, id int64) error

	CreateArea(ctx context.Context, area *domain.Area) error
	GetAreaByID(ctx context.Context, id int64) (*domain.Area, error)
	ListAreas(ctx context.Context) ([]*domain.Area, error)
	UpdateArea(ctx context.Context, area *domain.Area) error
	DeleteArea(ctx context.Context, id int64) error

	CreateLocation(ctx context.Context, location *domain.Location) error
	GetLocationByID(ctx context.Context, id int64) (*domain.Location, error)
	ListLocations(ctx context.Context) ([]*domain.Location, error)
	UpdateLocation(ctx context.Context, location *domain.Location) error
	DeleteLocation(ctx context.Context, id int64) error

	CreateWasteType(ctx context.Context, wt *domain.WasteType) error
	GetWasteTypeByID(ctx context.Context, id int64) (*domain.WasteType, error)
	ListWasteTypes(ctx context.Context) ([]*domain.WasteType, error)
	UpdateWasteType(ctx context.Context, wt *domain.WasteType) error
	DeleteWasteType(ctx context.Context, id int64) error

	CreateWaste(ctx context.Context, waste *domain.Waste) error
	GetWasteByID(ctx context.Context, id int64) (*domain.Waste, error)
	ListWastes(ctx context.Context) ([]*domain.Waste, error)
	UpdateWaste(ctx context.Context, waste *domain.Waste) error
	DeleteWaste(ctx context.Context, id int64) error

	CreateDisposal(ctx context.Context, disposal *domain.Disposal) error
	GetDisposalByID(ctx context.Context, id int64) (*domain.Disposal, error)
	ListDisposals(ctx context.Context) ([]*domain.Disposal, error)
	UpdateDisposal(ctx context.Context, disposal *domain.Disposal) error
	DeleteDisposal(ctx context.Context, id int64) error

	// ListDisposalFacts returns the joined snapshot a single analytics
	// operation aggregates over.
	ListDisposalFacts(ctx context.Context, opts FactQueryOpts) ([]*domain.DisposalFact, error)

	InsertAudit(ctx context.Context, record *domain.AuditRecord) error
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
