package models

// Item is a generic named record with no domain rules attached.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
