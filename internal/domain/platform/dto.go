// internal/domain/platform/dto.go
package platform

import "hotel-admin-service/internal/domain/pagination"

type CreatePlatformRequest struct {
	Platform      Platform `json:"platform" binding:"required"`
	LoginID       string   `json:"login_id" binding:"required"`
	LoginPassword string   `json:"login_password" binding:"required"`
	HotelName     string   `json:"hotel_name" binding:"required"`
	MFAID         string   `json:"mfa_id,omitempty"`
	MFAPassword   string   `json:"mfa_password,omitempty"`
	MFAPlatform   string   `json:"mfa_platform,omitempty"`
	Status        string   `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

// ApplyDefaults fills the status when the caller omitted it. The only
// request-body mutation the gateway performs.
func (r *CreatePlatformRequest) ApplyDefaults() {
	if r.Status == "" {
		r.Status = StatusActive
	}
}

// UpdatePlatformRequest deliberately has no platform field: the platform a
// credential belongs to cannot change after creation.
type UpdatePlatformRequest struct {
	LoginID       string `json:"login_id,omitempty"`
	LoginPassword string `json:"login_password,omitempty"`
	HotelName     string `json:"hotel_name,omitempty"`
	MFAID         string `json:"mfa_id,omitempty"`
	MFAPassword   string `json:"mfa_password,omitempty"`
	MFAPlatform   string `json:"mfa_platform,omitempty"`
	Status        string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

type ListResponse = pagination.Envelope[HotelPlatform]

// DeleteResponse is the fixed acknowledgment returned once the backend
// confirms deletion.
type DeleteResponse struct {
	Message string `json:"message"`
}
