package request

import (
	"workspace-booking/internal/usecase/commands"
)

type CreateResourceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required"`
	Description *string `json:"description"`
}

func (r *CreateResourceRequest) ToInput() commands.CreateResourceInput {
	return commands.CreateResourceInput{
		Name:        r.Name,
		Capacity:    r.Capacity,
		Description: r.Description,
	}
}

// UpdateResourceRequest is a partial update. An empty description clears it.
type UpdateResourceRequest struct {
	Name        *string `json:"name"`
	Capacity    *int    `json:"capacity"`
	Description *string `json:"description"`
}

func (r *UpdateResourceRequest) ToInput() commands.UpdateResourceInput {
	return commands.UpdateResourceInput{
		Name:        r.Name,
		Capacity:    r.Capacity,
		Description: r.Description,
	}
}
