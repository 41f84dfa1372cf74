package domain

const (
	CategoryTechnology = "Technology"
	CategoryDesign     = "Design"
	CategoryMedia      = "Media"
)

type PortfolioItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
}
