package request

import (
	"pass-config-engine/internal/pkg/patch"
	"pass-config-engine/internal/usecase/commands"
)

type CreateURLRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r CreateURLRequest) ToCommand() commands.CreateURLRequest {
	return commands.CreateURLRequest{Name: r.Name, Address: r.URL, Description: r.Description}
}

// UpdateURLRequest is a partial update. A null url or description clears it.
type UpdateURLRequest struct {
	Name        *string                `json:"name,omitempty" binding:"omitempty,max=255"`
	URL         patch.Nullable[string] `json:"url"`
	Description patch.Nullable[string] `json:"description"`
}

func (r UpdateURLRequest) ToCommand() commands.UpdateURLRequest {
	return commands.UpdateURLRequest{Name: r.Name, Address: r.URL, Description: r.Description}
}
