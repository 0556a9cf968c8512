package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot functions flatten one entity into a plain map for audit storage.
// Each entity enumerates its own columns: decimals become numbers, timestamps
// become RFC 3339 UTC strings, enumerations become their string tag.
// Relations are never walked.

func decimalValue(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	f, _ := d.Float64()
	return f
}

func timeValue(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Snapshot flattens the user, excluding the password hash.
func (u *User) Snapshot() map[string]any {
	if u == nil {
		return nil
	}
	return map[string]any{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"full_name":  u.FullName,
		"role":       string(u.Role),
		"active":     u.Active,
		"created_at": timeValue(u.CreatedAt),
	}
}

// Snapshot flattens the fabric.
func (f *Fabric) Snapshot() map[string]any {
	if f == nil {
		return nil
	}
	var color any
	if f.Color != nil {
		color = string(*f.Color)
	}
	return map[string]any{
		"id":             f.ID,
		"name":           f.Name,
		"grammage":       decimalValue(f.Grammage),
		"elasticity":     f.Elasticity,
		"supplier":       f.Supplier,
		"standard_width": decimalValue(f.StandardWidth),
		"color":          color,
	}
}

// Snapshot flattens the brand.
func (b *Brand) Snapshot() map[string]any {
	if b == nil {
		return nil
	}
	return map[string]any{"id": b.ID, "name": b.Name}
}

// Snapshot flattens the fit type.
func (f *FitType) Snapshot() map[string]any {
	if f == nil {
		return nil
	}
	return map[string]any{"id": f.ID, "name": f.Name}
}

// Snapshot flattens the product type.
func (t *ProductType) Snapshot() map[string]any {
	if t == nil {
		return nil
	}
	return map[string]any{"id": t.ID, "name": t.Name}
}

// Snapshot flattens the sample.
func (s *Sample) Snapshot() map[string]any {
	if s == nil {
		return nil
	}
	return map[string]any{
		"id":                    s.ID,
		"product_type_id":       s.ProductTypeID,
		"fit_type_id":           s.FitTypeID,
		"fabric_id":             s.FabricID,
		"brand_id":              uintValue(s.BrandID),
		"estimated_consumption": decimalValue(s.EstimatedConsumption),
		"estimated_cost":        decimalValue(s.EstimatedCost),
		"cost_file":             s.CostFile,
		"approved":              s.Approved,
	}
}

// Snapshot flattens the base variant.
func (b *BaseVariant) Snapshot() map[string]any {
	if b == nil {
		return nil
	}
	return map[string]any{
		"id":            b.ID,
		"sample_id":     b.SampleID,
		"pattern_file":  b.PatternFile,
		"approved":      b.Approved,
		"erp_record_id": int64Value(b.ERPRecordID),
		"erp_model_id":  int64Value(b.ERPModelID),
	}
}

// Snapshot flattens the grading.
func (g *Grading) Snapshot() map[string]any {
	if g == nil {
		return nil
	}
	return map[string]any{
		"id":              g.ID,
		"base_variant_id": g.BaseVariantID,
		"file":            g.File,
		"size_curve":      g.SizeCurve,
	}
}

// Snapshot flattens the spec sheet.
func (s *SpecSheet) Snapshot() map[string]any {
	if s == nil {
		return nil
	}
	return map[string]any{
		"id":              s.ID,
		"base_variant_id": s.BaseVariantID,
		"name":            s.Name,
		"file":            s.File,
	}
}

func uintValue(v *uint) any {
	if v == nil {
		return nil
	}
	return *v
}

func int64Value(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
