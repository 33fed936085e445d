package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/shadfar/vehweb/pkg/core/model"
)

type VehiclesConnQueryer interface {
	VehiclesQueryer
}

type VehiclesTxQueryer interface {
	VehiclesQueryer
}

// VehiclesQueryer is the vehicles repository contract as consumed by
// the vehicles use case. The repository is the sole authority for
// identifier assignment and existence; FindByID and Delete report a
// missing identifier with a cerr.NotFound error.
type VehiclesQueryer interface {
	// FindAll returns all persisted vehicles in the repository
	// native order, without any re-sorting.
	FindAll(ctx context.Context) ([]model.Vehicle, error)

	// FindByID returns the vehicle with the given identifier.
	FindByID(ctx context.Context, vid uuid.UUID) (*model.Vehicle, error)

	// Create persists v as a fresh record, assigning a new unique
	// identifier, and returns the persisted vehicle.
	Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)

	// Update overwrites the details, condition, and coordinate
	// columns of the record identified by v.ID and returns the
	// persisted vehicle.
	Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)

	// Delete removes the record with the given identifier.
	Delete(ctx context.Context, vid uuid.UUID) error
}

type Vehicles interface {
	Conn(Conn) VehiclesConnQueryer
	Tx(Tx) VehiclesTxQueryer
}
