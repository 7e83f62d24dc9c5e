package models

// Category is a named budget bucket with an integer target per timeframe.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"catName"`
	Target    int    `json:"target"`
	Timeframe string `json:"timeframe"`
}
