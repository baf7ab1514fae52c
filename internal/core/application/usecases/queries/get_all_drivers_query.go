package queries

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/driver"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery retrieves the whole fleet with delivery stats for
// the staff dashboard.
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDriversQuery creates a query to retrieve the fleet.
func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// GetAllDriversQueryResponse represents one driver in the read model.
type GetAllDriversQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	Vehicle         string
	Status          driver.Status
	DaysOff         []string
	TotalDeliveries int
	Rating          float64
}
