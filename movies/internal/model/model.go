package model

type Movie struct {
	ID          int     `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Year        int     `json:"year" db:"year"`
	Description string  `json:"description" db:"description"`
	Rating      float64 `json:"rating" db:"rating"`
	Ranking     int     `json:"ranking" db:"ranking"`
	Review      string  `json:"review" db:"review"`
	ImgURL      string  `json:"img_url" db:"img_url"`
}

// Rank assigns a dense 1..N ranking over movies in the order given. The
// caller passes the collection sorted by rating descending; equal ratings
// keep the order the store returned them in.
func Rank(movies []Movie) []Movie {
	for i := range movies {
		movies[i].Ranking = i + 1
	}
	return movies
}

type EditMovieRequest struct {
	Rating float64 `form:"rating" validate:"required,gte=0,lte=10"`
	Review string  `form:"review" validate:"required"`
}
