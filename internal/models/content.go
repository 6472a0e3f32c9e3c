package models

type LifePrinciple struct {
	Meta
	Text string `json:"text"`
}

type VisualizationItem struct {
	Meta
	Title         string `json:"title"`
	IsTangible    bool   `json:"isTangible"`
	Content       string `json:"content"`
	IsAIGenerated bool   `json:"isAiGenerated"`
	AIProvider    string `json:"aiProvider"`
}
