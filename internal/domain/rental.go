package domain

import (
	"math"
	"time"
)

// CustomerSnapshot is a point-in-time copy of the customer embedded in a
// rental at checkout. Later edits to the customer do not touch past rentals.
type CustomerSnapshot struct {
	ID    int32  `json:"_id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// MovieSnapshot is a point-in-time copy of the movie embedded in a rental at
// checkout. All fee calculations use the snapshot rate, not the live movie.
type MovieSnapshot struct {
	ID              int32   `json:"_id"`
	Title           string  `json:"title"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

type Rental struct {
	ID           int32            `json:"_id"`
	Customer     CustomerSnapshot `json:"customer"`
	Movie        MovieSnapshot    `json:"movie"`
	DateOut      time.Time        `json:"dateOut"`
	DateReturned *time.Time       `json:"dateReturned,omitempty"`
	RentalFee    float64          `json:"rentalFee"`
}

// NewRental builds an open rental from the resolved customer and movie.
func NewRental(customer *Customer, movie *Movie, now time.Time) *Rental {
	return &Rental{
		Customer: CustomerSnapshot{
			ID:    customer.ID,
			Name:  customer.Name,
			Phone: customer.Phone,
		},
		Movie: MovieSnapshot{
			ID:              movie.ID,
			Title:           movie.Title,
			DailyRentalRate: movie.DailyRentalRate,
		},
		DateOut: now,
	}
}

// Open reports whether the rental has not been returned yet.
func (r *Rental) Open() bool {
	return r.DateReturned == nil
}

// Return closes the rental: it stamps the return time and computes the fee as
// whole elapsed days times the snapshot daily rate. A same-day return is free.
func (r *Rental) Return(now time.Time) {
	r.DateReturned = &now

	days := math.Floor(now.Sub(r.DateOut).Hours() / 24)
	if days < 0 {
		days = 0
	}
	r.RentalFee = days * r.Movie.DailyRentalRate
}
