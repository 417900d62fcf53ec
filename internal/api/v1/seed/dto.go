package seed

type SeedResponse struct {
	Success bool   `json:"success"`
	Added   int    `json:"added"`
	Message string `json:"message"`
}
