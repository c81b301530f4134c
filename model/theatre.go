package model

import "time"

type Showtime struct {
	Id          int       `json:"showtime_id"`
	MovieId     int       `json:"movie_id"`
	ScreenId    int       `json:"screen_id"`
	StartTime   time.Time `json:"start_time"`
	Price       float64   `json:"price"`
	SeatsBooked int       `json:"seats_booked"`
}

type Screen struct {
	Id           int    `json:"screen_id"`
	TheatreId    int    `json:"theatre_id"`
	ScreenNumber string `json:"screen_number"`
	NumRows      int    `json:"num_rows"`
	NumCols      int    `json:"num_cols"`
}

type Theatre struct {
	Id       int    `json:"theatre_id"`
	CinemaId int    `json:"cinema_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

type Cinema struct {
	Id   int    `json:"cinema_id"`
	Name string `json:"name"`
}
