package generate_description

// GenerateDescriptionRequest HTTP request model
type GenerateDescriptionRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Features string `json:"features"`
}

// GenerateDescriptionResponse HTTP response model
type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}
