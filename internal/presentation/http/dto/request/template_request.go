package request

// SelectTemplateRequest switches the session to a catalog preset.
type SelectTemplateRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

// TemplateFlagsRequest toggles the per-session template flags.
type TemplateFlagsRequest struct {
	ShowTax *bool `json:"show_tax"`
	ShowTip *bool `json:"show_tip"`
}
