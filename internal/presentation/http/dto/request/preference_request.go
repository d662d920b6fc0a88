package request

// SetLangRequest persists the receipt language choice.
type SetLangRequest struct {
	Lang string `json:"lang" binding:"required"`
}
