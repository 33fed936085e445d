// Package vehiclesrp realizes the vehicles repository contract over
// a PostgreSQL database using the GORM framework. Query functions are
// generic over the connection and transaction queryer types, so each
// operation may be used from both of them uniformly.
package vehiclesrp

import (
	"context"

	"github.com/google/uuid"
	"github.com/shadfar/vehweb/pkg/adapter/db/postgres"
	"github.com/shadfar/vehweb/pkg/core/model"
	"github.com/shadfar/vehweb/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (vehicles *Repo) Conn(c repo.Conn) repo.VehiclesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) FindAll(ctx context.Context) ([]model.Vehicle, error) {
	return FindAll(ctx, cq.Conn)
}

func (cq connQueryer) FindByID(ctx context.Context, vid uuid.UUID) (*model.Vehicle, error) {
	return FindByID(ctx, cq.Conn, vid)
}

func (cq connQueryer) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	return Create(ctx, cq.Conn, v)
}

func (cq connQueryer) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	return Update(ctx, cq.Conn, v)
}

func (cq connQueryer) Delete(ctx context.Context, vid uuid.UUID) error {
	return Delete(ctx, cq.Conn, vid)
}

type txQueryer struct {
	*postgres.Tx
}

func (vehicles *Repo) Tx(tx repo.Tx) repo.VehiclesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) FindAll(ctx context.Context) ([]model.Vehicle, error) {
	return FindAll(ctx, tq.Tx)
}

func (tq txQueryer) FindByID(ctx context.Context, vid uuid.UUID) (*model.Vehicle, error) {
	return FindByID(ctx, tq.Tx, vid)
}

func (tq txQueryer) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	return Create(ctx, tq.Tx, v)
}

func (tq txQueryer) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	return Update(ctx, tq.Tx, v)
}

func (tq txQueryer) Delete(ctx context.Context, vid uuid.UUID) error {
	return Delete(ctx, tq.Tx, vid)
}
