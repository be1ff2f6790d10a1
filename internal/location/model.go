package location

import (
	"github.com/tableside/locations-backend/internal/pkg/apperror"
)

// Field limits from the write validation rules.
const (
	MaxNameLength    = 120
	MaxAddressLength = 120
)

var (
	ErrNotFound          = apperror.NotFound("location not found")
	ErrNameOrAddressLong = apperror.BadRequest("The Name or Address must be 120 characters or less.")
	ErrTableCountInvalid = apperror.BadRequest("The table count must be at least one.")
	ErrInvalidManagerID  = apperror.BadRequest("Invalid ManagerId")
	ErrForbidden         = apperror.Forbidden("you do not have permission to modify this location")
	// ErrManagerReassign is returned when a non-admin caller tries to change
	// the location's manager. The whole update is rejected; no field is applied.
	ErrManagerReassign = apperror.Forbidden("only admins can reassign the location manager")
)

// Location represents a venue record. ManagerID is a weak reference to a
// user granted self-service update rights over this location only.
type Location struct {
	ID         int
	Name       string
	Address    string
	TableCount int
	ManagerID  *int
}
