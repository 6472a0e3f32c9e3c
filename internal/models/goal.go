package models

type GoalCategory struct {
	Meta
	Name string `json:"name"`
}

// Goal references its category by id only. Orphaned references are tolerated;
// nothing enforces the link at the storage layer.
type Goal struct {
	Meta
	Name        string `json:"name"`
	CategoryID  string `json:"categoryId"`
	TargetDate  Date   `json:"targetDate"`
	IsCompleted bool   `json:"isCompleted"`
}
