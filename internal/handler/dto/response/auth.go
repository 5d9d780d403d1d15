package response

import "github.com/google/uuid"

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	DriverID    uuid.UUID `json:"driver_id"`
}
