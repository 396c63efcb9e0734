package entity

type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

type TextResponse struct {
	Prompt string `json:"prompt"`
	Text   string `json:"text"`
}

type ImageResponse struct {
	Prompt  string `json:"prompt"`
	DataURL string `json:"data_url"`
	Format  string `json:"format"`
}

type ScriptResponse struct {
	Prompt           string `json:"prompt"`
	Script           string `json:"script"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}
