package models

// Envelope is the common part of every JSON API response.
// Error is true when the request failed; Message is a human-readable
// description of the outcome.
type Envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// RootResponse is returned by GET /.
type RootResponse struct {
	Data string `json:"data"`
}

// RegisterResponse is returned by a successful POST /create-account.
type RegisterResponse struct {
	Envelope
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}

// LoginResponse is returned by a successful POST /login.
type LoginResponse struct {
	Envelope
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
}

// UserResponse is returned by GET /get-user.
type UserResponse struct {
	Envelope
	User User `json:"user"`
}

// NoteResponse carries a single note.
type NoteResponse struct {
	Envelope
	Note Note `json:"note"`
}

// NotesResponse carries a list of notes. Notes is never null.
type NotesResponse struct {
	Envelope
	Notes []Note `json:"notes"`
}
