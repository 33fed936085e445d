package vehiclesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/shadfar/vehweb/pkg/adapter/restful/gin/serdser"
	"github.com/shadfar/vehweb/pkg/core/model"
)

// rawVehicleReq is the JSON payload of the create and update APIs.
// The location is flattened to lat/lon pointer fields, so a missing
// coordinate can be told apart from the (0, 0) coordinate.
type rawVehicleReq struct {
	Details struct {
		Make  string `json:"make" binding:"required"`
		Model string `json:"model" binding:"required"`
		Year  int    `json:"year" binding:"required,gte=1886"`
	} `json:"details" binding:"required"`
	Condition string   `json:"condition" binding:"required,oneof=new used"`
	Lat       *float64 `json:"lat" binding:"required,latitude"`
	Lon       *float64 `json:"lon" binding:"required,longitude"`
}

// DserVehicleReq binds and validates a vehicle payload, returning nil
// after serializing a suitable error response if the payload is not
// acceptable. The returned vehicle carries a zero ID; callers which
// serve an update API must fill it from the path themselves.
func (rs *resource) DserVehicleReq(c *gin.Context) *model.Vehicle {
	req := &rawVehicleReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	cond, err := model.ParseCondition(req.Condition)
	if err != nil {
		// unreachable while the oneof values match the enum
		var errs map[string][]string
		serdser.AddErr(&errs, "condition", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &model.Vehicle{
		Details: model.Details{
			Make:  req.Details.Make,
			Model: req.Details.Model,
			Year:  req.Details.Year,
		},
		Condition: cond,
		Coordinate: model.Coordinate{
			Lat: *req.Lat,
			Lon: *req.Lon,
		},
	}
}

// DserVehicleID parses the :vid path parameter, returning a zero UUID
// after serializing an error response for malformed identifiers.
func (rs *resource) DserVehicleID(c *gin.Context) (uuid.UUID, bool) {
	vid, err := uuid.Parse(c.Param("vid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "vid", "Path param vid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return vid, true
}
