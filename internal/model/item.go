package model

// Item is the domain model for a todo entry as served by the remote API.
// Records are read-only once fetched; nothing in the app mutates them.
type Item struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Status is the human label for the completion flag.
func (it Item) Status() string {
	if it.Completed {
		return "Completed"
	}
	return "Not completed"
}
