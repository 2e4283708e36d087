package dto

type AnalyzeIntentRequest struct {
	Intent string `json:"intent" binding:"required"`
}

type AnalyzeIntentResponse struct {
	Mission     string `json:"mission"`
	Explanation string `json:"explanation"`
}
