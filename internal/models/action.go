package models

// ActionItem is a one-off to-do with a due date. No recurrence.
type ActionItem struct {
	Meta
	Name    string `json:"name"`
	DueDate Date   `json:"dueDate"`
	IsDone  bool   `json:"isDone"`
}
