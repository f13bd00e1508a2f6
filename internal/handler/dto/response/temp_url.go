package response

import (
	"pass-config-engine/internal/domain/tempurl"
)

type URLResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Temporary   bool    `json:"temporary"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

func FromURL(u *tempurl.URL) *URLResponse {
	return &URLResponse{
		ID:          u.ID().String(),
		Name:        u.Name(),
		URL:         u.Address(),
		Description: u.Description(),
		Temporary:   u.IsTemporary(),
		CreatedAt:   u.CreatedAt().Unix(),
		UpdatedAt:   u.UpdatedAt().Unix(),
	}
}

func FromURLs(urls []*tempurl.URL) []*URLResponse {
	res := make([]*URLResponse, len(urls))
	for i, u := range urls {
		res[i] = FromURL(u)
	}
	return res
}
