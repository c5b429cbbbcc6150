package models

// Interest is one selectable entry in the planner's interest catalogue.
type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var Interests = []Interest{
	{ID: "adventure", Name: "Adventure"},
	{ID: "culture", Name: "Culture"},
	{ID: "food", Name: "Food & Dining"},
	{ID: "history", Name: "Historical Sites"},
	{ID: "nightlife", Name: "Nightlife"},
	{ID: "photography", Name: "Photography"},
	{ID: "shopping", Name: "Shopping"},
	{ID: "nature", Name: "Nature"},
	{ID: "relaxation", Name: "Relaxation"},
	{ID: "urban", Name: "City Life"},
	{ID: "romance", Name: "Romance"},
}

// InterestLabel returns the display name for an interest id, or the id
// itself when it is not in the catalogue.
func InterestLabel(id string) string {
	for _, in := range Interests {
		if in.ID == id {
			return in.Name
		}
	}
	return id
}
