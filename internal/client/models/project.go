package models

// Project is a project record as returned by the admin API.
type Project struct {
	ID        string   `json:"id"`
	Name      string   `json:"project_name,omitempty"`
	OwnerID   string   `json:"project_owner,omitempty"`
	Team      []string `json:"team,omitempty"`
	Status    string   `json:"status,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
}
