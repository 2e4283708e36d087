package dto

type SubmitRequest struct {
	Mission string         `json:"mission"`
	Data    map[string]any `json:"data"`
}

type SubmitErrorResponse struct {
	Success    bool     `json:"success"`
	Error      string   `json:"error"`
	Errors     []string `json:"errors,omitempty"`
	RetryAfter int      `json:"retryAfter,omitempty"` // seconds, throttled only
}

type SubmitSuccessResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Reference string   `json:"reference"`
	Mission   string   `json:"mission"`
	Nom       string   `json:"nom"`
	Montant   *float64 `json:"montant,omitempty"`
}
