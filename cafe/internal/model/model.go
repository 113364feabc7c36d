package model

type Cafe struct {
	ID           int     `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	MapURL       string  `json:"map_url" db:"map_url"`
	ImgURL       string  `json:"img_url" db:"img_url"`
	Location     string  `json:"location" db:"location"`
	Seats        string  `json:"seats" db:"seats"`
	HasToilet    bool    `json:"has_toilet" db:"has_toilet"`
	HasWifi      bool    `json:"has_wifi" db:"has_wifi"`
	HasSockets   bool    `json:"has_sockets" db:"has_sockets"`
	CanTakeCalls bool    `json:"can_take_calls" db:"can_take_calls"`
	CoffeePrice  *string `json:"coffee_price" db:"coffee_price"`
}

type CreateCafeRequest struct {
	Name        string `form:"name" validate:"required"`
	MapURL      string `form:"map_url" validate:"required"`
	ImgURL      string `form:"img_url" validate:"required"`
	Location    string `form:"location" validate:"required"`
	Seats       string `form:"seats" validate:"required"`
	Sockets     bool   `form:"sockets"`
	Toilet      bool   `form:"toilet"`
	Wifi        bool   `form:"wifi"`
	Calls       bool   `form:"calls"`
	CoffeePrice string `form:"coffee_price"`
}

func (r CreateCafeRequest) Cafe() Cafe {
	c := Cafe{
		Name:         r.Name,
		MapURL:       r.MapURL,
		ImgURL:       r.ImgURL,
		Location:     r.Location,
		Seats:        r.Seats,
		HasToilet:    r.Toilet,
		HasWifi:      r.Wifi,
		HasSockets:   r.Sockets,
		CanTakeCalls: r.Calls,
	}
	if r.CoffeePrice != "" {
		price := r.CoffeePrice
		c.CoffeePrice = &price
	}
	return c
}
