package request

type ExtractRequest struct {
	URL string `json:"url"`
}
