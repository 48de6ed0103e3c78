package models

// Movie is one cleaned row of the ratings dataset.
type Movie struct {
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Country     string  `json:"country"`
	VoteAverage float64 `json:"vote_average"`
}
