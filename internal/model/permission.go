package model

// PermissionOverride is the per-user capability row for editor and viewer
// roles. At most one row exists per user. Admin-tier users never get a row;
// any row left behind after a promotion is ignored by permission resolution.
//
// There is intentionally no manage-users column: that capability is derived
// from the role alone and can never be granted through an override.
type PermissionOverride struct {
	ID     uint `json:"-" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"uniqueIndex;not null"`

	BrandsView   bool `json:"brands_view"`
	BrandsCreate bool `json:"brands_create"`
	BrandsEdit   bool `json:"brands_edit"`
	BrandsDelete bool `json:"brands_delete"`

	ProductTypesView   bool `json:"product_types_view"`
	ProductTypesCreate bool `json:"product_types_create"`
	ProductTypesEdit   bool `json:"product_types_edit"`
	ProductTypesDelete bool `json:"product_types_delete"`

	FitTypesView   bool `json:"fit_types_view"`
	FitTypesCreate bool `json:"fit_types_create"`
	FitTypesEdit   bool `json:"fit_types_edit"`
	FitTypesDelete bool `json:"fit_types_delete"`

	FabricsView   bool `json:"fabrics_view"`
	FabricsCreate bool `json:"fabrics_create"`
	FabricsEdit   bool `json:"fabrics_edit"`
	FabricsDelete bool `json:"fabrics_delete"`

	SamplesView   bool `json:"samples_view"`
	SamplesCreate bool `json:"samples_create"`
	SamplesEdit   bool `json:"samples_edit"`
	SamplesDelete bool `json:"samples_delete"`

	BasesView   bool `json:"bases_view"`
	BasesCreate bool `json:"bases_create"`
	BasesEdit   bool `json:"bases_edit"`
	BasesDelete bool `json:"bases_delete"`

	GradingsView   bool `json:"gradings_view"`
	GradingsCreate bool `json:"gradings_create"`
	GradingsEdit   bool `json:"gradings_edit"`
	GradingsDelete bool `json:"gradings_delete"`

	DownloadPatterns bool `json:"download_patterns"`
	DownloadGradings bool `json:"download_gradings"`
	DownloadSheets   bool `json:"download_sheets"`
	DownloadImages   bool `json:"download_images"`
	DownloadCosts    bool `json:"download_costs"`

	UploadPatterns bool `json:"upload_patterns"`
	UploadGradings bool `json:"upload_gradings"`
	UploadSheets   bool `json:"upload_sheets"`
	UploadImages   bool `json:"upload_images"`
	UploadCosts    bool `json:"upload_costs"`
}

// TableName overrides GORM's default pluralization.
func (PermissionOverride) TableName() string {
	return "permission_overrides"
}
