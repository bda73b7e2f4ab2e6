package dto

type SubmitRequest struct {
	Answers []int `json:"answers"`
}

type SubmitResponse struct {
	Message   string  `json:"message"`
	ResultID  uint    `json:"resultId"`
	Score     int     `json:"score"`
	BandScore float64 `json:"bandScore"`
	Total     int     `json:"total"`
}
