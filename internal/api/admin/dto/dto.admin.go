// Package admindto - request DTOs for site administration.
package admindto

// MaintenanceInput is the body of POST /api/admin/maintenance.
type MaintenanceInput struct {
	Enabled *bool `json:"enabled" validate:"required"`
}
