package http

import (
	"github.com/tableside/locations-backend/internal/location"
)

// LocationResponse is the projection exposed for location records.
type LocationResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	TableCount int    `json:"tableCount"`
	ManagerID  *int   `json:"managerId"`
}

func NewLocationResponse(l *location.Location) LocationResponse {
	return LocationResponse{
		ID:         l.ID,
		Name:       l.Name,
		Address:    l.Address,
		TableCount: l.TableCount,
		ManagerID:  l.ManagerID,
	}
}

// SaveLocationBody is the input shape shared by create and update.
// TableCount is a pointer so a missing value fails the table-count rule
// with its descriptive message instead of a generic binding error.
type SaveLocationBody struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	TableCount *int   `json:"tableCount"`
	ManagerID  *int   `json:"managerId"`
}

func (b SaveLocationBody) toRequest() location.SaveLocationRequest {
	req := location.SaveLocationRequest{
		Name:      b.Name,
		Address:   b.Address,
		ManagerID: b.ManagerID,
	}
	if b.TableCount != nil {
		req.TableCount = *b.TableCount
	}
	return req
}
