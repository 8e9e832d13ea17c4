package domain

import "time"

type CardStatus string

const (
	StatusToDo       CardStatus = "TO_DO"
	StatusInProgress CardStatus = "IN_PROGRESS"
	StatusInReview   CardStatus = "IN_REVIEW"
	StatusDone       CardStatus = "DONE"
)

var CardStatuses = []CardStatus{StatusToDo, StatusInProgress, StatusInReview, StatusDone}

func (s CardStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusInReview, StatusDone:
		return true
	}
	return false
}

type CardPriority string

const (
	PriorityLow    CardPriority = "LOW"
	PriorityMedium CardPriority = "MEDIUM"
	PriorityHigh   CardPriority = "HIGH"
)

var CardPriorities = []CardPriority{PriorityLow, PriorityMedium, PriorityHigh}

func (p CardPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Card struct {
	ID          string       `json:"id"`
	ListID      string       `json:"listId"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      CardStatus   `json:"status"`
	Priority    CardPriority `json:"priority"`
	Position    int          `json:"position"`
	AssigneeID  *string      `json:"assigneeId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// CardPatch carries the optional fields of a card update. Nil leaves the
// field unchanged.
type CardPatch struct {
	Title       *string
	Description *string
	Status      *CardStatus
	Priority    *CardPriority
}

// CardPosition moves one card, possibly into another list.
type CardPosition struct {
	ID       string
	ListID   string
	Position int
}

type Comment struct {
	ID         string    `json:"id"`
	CardID     string    `json:"cardId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
