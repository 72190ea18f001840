package api

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type habitPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	TargetValue int    `json:"target_value"`
	TargetUnit  string `json:"target_unit"`
	Color       string `json:"color"`
}

type progressPayload struct {
	Value int    `json:"value"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
}
