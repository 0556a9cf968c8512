package auth

import "textilerp/internal/model"

// CapabilitySet is the resolved mapping of (resource category × operation)
// to allowed/denied for one user. It mirrors the PermissionOverride columns
// plus the role-derived manage-users capability.
type CapabilitySet struct {
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

	ManageUsers bool `json:"manage_users"`
}

// FullCapabilities is the maximal capability set held by admin-tier roles.
func FullCapabilities() CapabilitySet {
	return CapabilitySet{
		BrandsView: true, BrandsCreate: true, BrandsEdit: true, BrandsDelete: true,
		ProductTypesView: true, ProductTypesCreate: true, ProductTypesEdit: true, ProductTypesDelete: true,
		FitTypesView: true, FitTypesCreate: true, FitTypesEdit: true, FitTypesDelete: true,
		FabricsView: true, FabricsCreate: true, FabricsEdit: true, FabricsDelete: true,
		SamplesView: true, SamplesCreate: true, SamplesEdit: true, SamplesDelete: true,
		BasesView: true, BasesCreate: true, BasesEdit: true, BasesDelete: true,
		GradingsView: true, GradingsCreate: true, GradingsEdit: true, GradingsDelete: true,
		DownloadPatterns: true, DownloadGradings: true, DownloadSheets: true,
		DownloadImages: true, DownloadCosts: true,
		UploadPatterns: true, UploadGradings: true, UploadSheets: true,
		UploadImages: true, UploadCosts: true,
		ManageUsers: true,
	}
}

// editorDefaults: create and edit everywhere but no deletes, download
// everything except cost data, upload everything.
var editorDefaults = CapabilitySet{
	BrandsView: true, BrandsCreate: true, BrandsEdit: true, BrandsDelete: false,
	ProductTypesView: true, ProductTypesCreate: true, ProductTypesEdit: true, ProductTypesDelete: false,
	FitTypesView: true, FitTypesCreate: true, FitTypesEdit: true, FitTypesDelete: false,
	FabricsView: true, FabricsCreate: true, FabricsEdit: true, FabricsDelete: false,
	SamplesView: true, SamplesCreate: true, SamplesEdit: true, SamplesDelete: false,
	BasesView: true, BasesCreate: true, BasesEdit: true, BasesDelete: false,
	GradingsView: true, GradingsCreate: true, GradingsEdit: true, GradingsDelete: false,
	DownloadPatterns: true, DownloadGradings: true, DownloadSheets: true,
	DownloadImages: true, DownloadCosts: false,
	UploadPatterns: true, UploadGradings: true, UploadSheets: true,
	UploadImages: true, UploadCosts: true,
	ManageUsers: false,
}

// viewerDefaults: read-only across all categories, image downloads only.
var viewerDefaults = CapabilitySet{
	BrandsView:       true,
	ProductTypesView: true,
	FitTypesView:     true,
	FabricsView:      true,
	SamplesView:      true,
	BasesView:        true,
	GradingsView:     true,
	DownloadImages:   true,
}

// RoleDefaults returns the capability set implied by a role alone. It is a
// pure function over a constant table; nothing mutates these values at
// runtime.
func RoleDefaults(role model.Role) CapabilitySet {
	switch role {
	case model.RoleSuperAdmin, model.RoleAdmin:
		return FullCapabilities()
	case model.RoleEditor:
		return editorDefaults
	default:
		return viewerDefaults
	}
}

// FromOverride converts a persisted override row into a capability set.
// ManageUsers is always false here: it cannot be granted via an override.
func FromOverride(o *model.PermissionOverride) CapabilitySet {
	return CapabilitySet{
		BrandsView: o.BrandsView, BrandsCreate: o.BrandsCreate, BrandsEdit: o.BrandsEdit, BrandsDelete: o.BrandsDelete,
		ProductTypesView: o.ProductTypesView, ProductTypesCreate: o.ProductTypesCreate, ProductTypesEdit: o.ProductTypesEdit, ProductTypesDelete: o.ProductTypesDelete,
		FitTypesView: o.FitTypesView, FitTypesCreate: o.FitTypesCreate, FitTypesEdit: o.FitTypesEdit, FitTypesDelete: o.FitTypesDelete,
		FabricsView: o.FabricsView, FabricsCreate: o.FabricsCreate, FabricsEdit: o.FabricsEdit, FabricsDelete: o.FabricsDelete,
		SamplesView: o.SamplesView, SamplesCreate: o.SamplesCreate, SamplesEdit: o.SamplesEdit, SamplesDelete: o.SamplesDelete,
		BasesView: o.BasesView, BasesCreate: o.BasesCreate, BasesEdit: o.BasesEdit, BasesDelete: o.BasesDelete,
		GradingsView: o.GradingsView, GradingsCreate: o.GradingsCreate, GradingsEdit: o.GradingsEdit, GradingsDelete: o.GradingsDelete,
		DownloadPatterns: o.DownloadPatterns, DownloadGradings: o.DownloadGradings, DownloadSheets: o.DownloadSheets,
		DownloadImages: o.DownloadImages, DownloadCosts: o.DownloadCosts,
		UploadPatterns: o.UploadPatterns, UploadGradings: o.UploadGradings, UploadSheets: o.UploadSheets,
		UploadImages: o.UploadImages, UploadCosts: o.UploadCosts,
		ManageUsers: false,
	}
}

// Effective resolves a user's effective capability set.
//
// Admin-tier roles always resolve to the maximal set, even when a stale
// override row exists for the user. Editor and viewer resolve to their
// override row verbatim when one exists, otherwise to the role defaults.
func Effective(user *model.User, override *model.PermissionOverride) CapabilitySet {
	if user.Role.AdminTier() {
		return FullCapabilities()
	}
	if override != nil {
		return FromOverride(override)
	}
	return RoleDefaults(user.Role)
}

// DefaultOverrideForRole materializes the role-derived defaults as a concrete
// override row for a newly created editor or viewer. Admin-tier roles never
// get a row.
func DefaultOverrideForRole(userID uint, role model.Role) *model.PermissionOverride {
	if role.AdminTier() {
		return nil
	}
	d := RoleDefaults(role)
	return &model.PermissionOverride{
		UserID:     userID,
		BrandsView: d.BrandsView, BrandsCreate: d.BrandsCreate, BrandsEdit: d.BrandsEdit, BrandsDelete: d.BrandsDelete,
		ProductTypesView: d.ProductTypesView, ProductTypesCreate: d.ProductTypesCreate, ProductTypesEdit: d.ProductTypesEdit, ProductTypesDelete: d.ProductTypesDelete,
		FitTypesView: d.FitTypesView, FitTypesCreate: d.FitTypesCreate, FitTypesEdit: d.FitTypesEdit, FitTypesDelete: d.FitTypesDelete,
		FabricsView: d.FabricsView, FabricsCreate: d.FabricsCreate, FabricsEdit: d.FabricsEdit, FabricsDelete: d.FabricsDelete,
		SamplesView: d.SamplesView, SamplesCreate: d.SamplesCreate, SamplesEdit: d.SamplesEdit, SamplesDelete: d.SamplesDelete,
		BasesView: d.BasesView, BasesCreate: d.BasesCreate, BasesEdit: d.BasesEdit, BasesDelete: d.BasesDelete,
		GradingsView: d.GradingsView, GradingsCreate: d.GradingsCreate, GradingsEdit: d.GradingsEdit, GradingsDelete: d.GradingsDelete,
		DownloadPatterns: d.DownloadPatterns, DownloadGradings: d.DownloadGradings, DownloadSheets: d.DownloadSheets,
		DownloadImages: d.DownloadImages, DownloadCosts: d.DownloadCosts,
		UploadPatterns: d.UploadPatterns, UploadGradings: d.UploadGradings, UploadSheets: d.UploadSheets,
		UploadImages: d.UploadImages, UploadCosts: d.UploadCosts,
	}
}
