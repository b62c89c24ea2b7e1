package models

// Notification is a fire-and-forget notice surfaced to a human operator after
// a mutating journey operation. The engine never consumes a reply.
type Notification struct {
	To      string `json:"to"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}
