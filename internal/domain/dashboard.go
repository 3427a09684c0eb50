package domain

import "time"

// Highlight заметка для дашборда, ведется менеджерами вручную
type Highlight struct {
	ID        int64
	Title     string
	Detail    string
	Tone      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
