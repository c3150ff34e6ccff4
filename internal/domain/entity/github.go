package entity

// GitHubRepo is the trimmed view of a public repository shown on the site.
type GitHubRepo struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	URL         string   `json:"url"`
	Homepage    *string  `json:"homepage"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	Language    *string  `json:"language"`
	Topics      []string `json:"topics"`
	UpdatedAt   string   `json:"updatedAt"`
}
