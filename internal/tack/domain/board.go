package domain

import "time"

type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

var Visibilities = []Visibility{VisibilityPublic, VisibilityPrivate}

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

type Board struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspaceId"`
	Name        string     `json:"name"`
	Visibility  Visibility `json:"visibility"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BoardMember grants a user access to a PRIVATE board.
type BoardMember struct {
	BoardID   string    `json:"boardId"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// BoardDetail is a board with its lists and cards, both in position order.
type BoardDetail struct {
	Board
	Lists []ListWithCards `json:"lists"`
}

// DefaultLists are created with every new board, in this order.
var DefaultLists = []string{"To Do", "In Progress", "In Review", "Done"}
