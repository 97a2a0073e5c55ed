package places

// Business mirrors the Yelp Fusion business-search payload.
type Business struct {
	ID           string  `json:"id"`
	Alias        string  `json:"alias"`
	Name         string  `json:"name"`
	ImageURL     string  `json:"image_url"`
	IsClosed     bool    `json:"is_closed"`
	URL          string  `json:"url"`
	ReviewCount  int     `json:"review_count"`
	Rating       float64 `json:"rating"`
	Price        string  `json:"price"`
	Phone        string  `json:"phone"`
	DisplayPhone string  `json:"display_phone"`
	Distance     float64 `json:"distance"`
	Categories   []struct {
		Alias string `json:"alias"`
		Title string `json:"title"`
	} `json:"categories"`
	Coordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
	Location struct {
		Address1       string   `json:"address1"`
		City           string   `json:"city"`
		ZipCode        string   `json:"zip_code"`
		State          string   `json:"state"`
		DisplayAddress []string `json:"display_address"`
	} `json:"location"`
	Hours []struct {
		HoursType string `json:"hours_type"`
		IsOpenNow bool   `json:"is_open_now"`
		Open      []struct {
			IsOvernight bool   `json:"is_overnight"`
			Start       string `json:"start"`
			End         string `json:"end"`
			Day         int    `json:"day"`
		} `json:"open"`
	} `json:"hours"`
}

type SearchResponse struct {
	Businesses []Business `json:"businesses"`
	Total      int        `json:"total"`
}

// SearchParams is the subset of Yelp search filters the planner drives.
type SearchParams struct {
	Location   string  `form:"location,optional"`
	Latitude   float64 `form:"latitude,optional"`
	Longitude  float64 `form:"longitude,optional"`
	Term       string  `form:"term,optional"`
	Categories string  `form:"categories,optional"`
	Price      string  `form:"price,optional"`
	Radius     int     `form:"radius,optional"`
	Limit      int     `form:"limit,optional"`
	Attributes string  `form:"attributes,optional"`
}
