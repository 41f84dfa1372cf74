package domain

type Testimonial struct {
	ID      string    `json:"id"`
	Quote   string    `json:"quote"`
	Name    string    `json:"name"`
	Role    string    `json:"role"`
	Company string    `json:"company"`
	Tag     string    `json:"tag"`
	Avatar  *ImageRef `json:"avatar,omitempty"`
}
