package dto

type CreateRegionRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

type UpdateRegionRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

type RegionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
}
