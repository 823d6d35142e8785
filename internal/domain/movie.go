package domain

type Movie struct {
	ID              int32   `json:"_id"`
	Title           string  `json:"title"`
	GenreID         int32   `json:"genreId"`
	Genre           *Genre  `json:"genre,omitempty"` // Populated on reads
	NumberInStock   int32   `json:"numberInStock"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}
