package models

// RegisterRequest is the body of POST /create-account.
type RegisterRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AddNoteRequest is the body of POST /add-note.
// Tags are optional and default to an empty list.
type AddNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    Tags   `json:"tags,omitempty"`
}

// EditNoteRequest is the body of PUT /edit-note/{noteId}.
//
// Only truthy values are applied: an empty title, empty content,
// empty tags or IsPinned == false leave the stored value unchanged.
type EditNoteRequest struct {
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	Tags     Tags   `json:"tags,omitempty"`
	IsPinned bool   `json:"isPinned,omitempty"`
}

// HasChanges reports whether the request carries at least one of
// title, content or tags. IsPinned alone does not count.
func (r EditNoteRequest) HasChanges() bool {
	return r.Title != "" || r.Content != "" || len(r.Tags) > 0
}

// PinNoteRequest is the body of PUT /pin-note/{noteId}.
// A missing isPinned is treated as false.
type PinNoteRequest struct {
	IsPinned *bool `json:"isPinned"`
}

// Pinned returns the requested pin state.
func (r PinNoteRequest) Pinned() bool {
	return r.IsPinned != nil && *r.IsPinned
}

// SearchNotesRequest carries the query string of GET /search-notes.
type SearchNotesRequest struct {
	Query string `json:"query"`
}
