package http

// TarotRequest is the JSON body accepted by POST /api/tarot.
type TarotRequest struct {
	Name string `json:"name"`
	DOB  string `json:"dob"`
}

// TarotResponse is the JSON shape returned by POST /api/tarot.
type TarotResponse struct {
	Success bool        `json:"success"`
	Data    ReadingData `json:"data"`
	Message string      `json:"message,omitempty"`
}

type ReadingData struct {
	Cards   []CardResponse `json:"cards"`
	Reading string         `json:"reading"`
	Source  string         `json:"source"`
}

type CardResponse struct {
	Name       string   `json:"name"`
	ImageURL   string   `json:"imageUrl"`
	IsReversed bool     `json:"isReversed"`
	Keywords   []string `json:"keywords"`
	Upright    string   `json:"upright,omitempty"`
	Reversed   string   `json:"reversed,omitempty"`
	Vietnamese string   `json:"vietnamese,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
