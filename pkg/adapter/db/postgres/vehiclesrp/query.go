package vehiclesrp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shadfar/vehweb/pkg/adapter/db/postgres"
	"github.com/shadfar/vehweb/pkg/core/cerr"
	"github.com/shadfar/vehweb/pkg/core/model"
	"gorm.io/gorm/clause"
)

// gVehicle adapts the model.Vehicle struct to the vehicles table.
// The condition enum is stored as its readable string form, so the
// table stays meaningful without this codebase at hand. There are no
// price or address columns; derived view-state never reaches the
// database.
type gVehicle struct {
	VID        uuid.UUID        `gorm:"primaryKey;type:uuid;column:vid"`
	Make       string           `gorm:"column:make"`
	ModelName  string           `gorm:"column:model"`
	Year       int              `gorm:"column:year"`
	Condition  string           `gorm:"column:condition"`
	Coordinate model.Coordinate `gorm:"embedded"`
}

func (gv *gVehicle) TableName() string {
	return "vehicles"
}

func (gv *gVehicle) Model() (*model.Vehicle, error) {
	cond, err := model.ParseCondition(gv.Condition)
	if err != nil {
		return nil, fmt.Errorf(
			"parsing condition %q of vehicle %s: %w",
			gv.Condition, gv.VID, err,
		)
	}
	return &model.Vehicle{
		ID: gv.VID,
		Details: model.Details{
			Make:  gv.Make,
			Model: gv.ModelName,
			Year:  gv.Year,
		},
		Condition:  cond,
		Coordinate: gv.Coordinate,
	}, nil
}

func toRow(v *model.Vehicle) gVehicle {
	return gVehicle{
		VID:        v.ID,
		Make:       v.Details.Make,
		ModelName:  v.Details.Model,
		Year:       v.Details.Year,
		Condition:  v.Condition.String(),
		Coordinate: v.Coordinate,
	}
}

func FindAll[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	if err := gdb.Find(&gvs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	vehicles := make([]model.Vehicle, 0, len(gvs))
	for i := range gvs {
		v, err := gvs[i].Model()
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, nil
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, vid uuid.UUID) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	err := gdb.Where("vid=?", vid).Limit(2).Find(&gvs).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gvs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gvs[0].Model()
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, v *model.Vehicle) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	gv := toRow(v)
	gv.VID = uuid.New() // the repository owns identifier assignment
	if err := gdb.Create(&gv).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return gv.Model()
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, v *model.Vehicle) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	err := gdb.Model(&gvs).Clauses(clause.Returning{}).Select(
		"make", "model", "year", "condition", "lat", "lon",
	).Where(
		"vid=?", v.ID,
	).Updates(toRow(v)).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gvs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gvs[0].Model()
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, vid uuid.UUID) error {
	gdb := q.GORM(ctx)
	res := gdb.Where("vid=?", vid).Delete(&gVehicle{})
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if n := res.RowsAffected; n != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return nil
}
