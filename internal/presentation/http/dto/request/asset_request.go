package request

// InstallAssetsRequest stages a new asset cache version.
type InstallAssetsRequest struct {
	Version string `json:"version" binding:"required"`
}
