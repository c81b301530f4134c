package model

type Movie struct {
	Id             int      `json:"movie_id"`
	Name           string   `json:"name"`
	Genres         []string `json:"genres"`
	RuntimeMinutes int      `json:"runtime_minutes"`
	ReleaseDate    string   `json:"release_date"`
	Rating         float64  `json:"rating"`
	Language       string   `json:"language"`
	Description    string   `json:"description,omitempty"`
	PosterUrl      string   `json:"posterUrl,omitempty"`
}
