package models

// Reference is a named lookup row (a supplier or a category). Rows are
// created lazily the first time a name is seen and are never deleted.
type Reference struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
