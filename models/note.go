package models

import "time"

// Note is a titled text entry owned by exactly one user.
// Every query against notes is filtered by UserID.
type Note struct {
	ID         string    `json:"_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       Tags      `json:"tags"`
	IsPinned   bool      `json:"isPinned"`
	UserID     string    `json:"userId"`
	CreatedOn  time.Time `json:"createdOn"`
	LastEdited time.Time `json:"lastEdited"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
