package domain

import "time"

type List struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"boardId"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListWithCards struct {
	List
	Cards []Card `json:"cards"`
}

// ListPosition moves one list within its board.
type ListPosition struct {
	ID       string
	Position int
}

// Location pins a list or card to its board and workspace.
type Location struct {
	WorkspaceID string
	BoardID     string
	ListID      string
}
