package model

import "github.com/shopspring/decimal"

// Sample is one sample garment: a product type in a given fit and fabric,
// optionally for a brand. It owns its base variants; deleting a sample
// deletes the variants and, transitively, their gradings and spec sheets.
type Sample struct {
	ID                   uint             `json:"id" gorm:"primaryKey"`
	ProductTypeID        uint             `json:"product_type_id" gorm:"not null"`
	FitTypeID            uint             `json:"fit_type_id" gorm:"not null"`
	FabricID             uint             `json:"fabric_id" gorm:"not null"`
	BrandID              *uint            `json:"brand_id"`
	EstimatedConsumption *decimal.Decimal `json:"estimated_consumption" gorm:"type:decimal(10,2)"`
	EstimatedCost        *decimal.Decimal `json:"estimated_cost" gorm:"type:decimal(10,2)"`
	CostFile             string           `json:"cost_file" gorm:"size:500"`
	Approved             bool             `json:"approved" gorm:"not null;default:false"`

	// Relations
	ProductType  *ProductType  `json:"product_type,omitempty" gorm:"foreignKey:ProductTypeID"`
	FitType      *FitType      `json:"fit_type,omitempty" gorm:"foreignKey:FitTypeID"`
	Fabric       *Fabric       `json:"fabric,omitempty" gorm:"foreignKey:FabricID"`
	Brand        *Brand        `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	BaseVariants []BaseVariant `json:"base_variants" gorm:"foreignKey:SampleID;constraint:OnDelete:CASCADE"`
}

// SamplePatch carries a partial sample update. Nil fields are left untouched.
type SamplePatch struct {
	ProductTypeID        *uint            `json:"product_type_id"`
	FitTypeID            *uint            `json:"fit_type_id"`
	FabricID             *uint            `json:"fabric_id"`
	BrandID              *uint            `json:"brand_id"`
	EstimatedConsumption *decimal.Decimal `json:"estimated_consumption"`
	EstimatedCost        *decimal.Decimal `json:"estimated_cost"`
	CostFile             *string          `json:"cost_file"`
	Approved             *bool            `json:"approved"`
}

// Apply merges the patch into s field by field.
func (p *SamplePatch) Apply(s *Sample) {
	if p.ProductTypeID != nil {
		s.ProductTypeID = *p.ProductTypeID
	}
	if p.FitTypeID != nil {
		s.FitTypeID = *p.FitTypeID
	}
	if p.FabricID != nil {
		s.FabricID = *p.FabricID
	}
	if p.BrandID != nil {
		s.BrandID = p.BrandID
	}
	if p.EstimatedConsumption != nil {
		s.EstimatedConsumption = p.EstimatedConsumption
	}
	if p.EstimatedCost != nil {
		s.EstimatedCost = p.EstimatedCost
	}
	if p.CostFile != nil {
		s.CostFile = *p.CostFile
	}
	if p.Approved != nil {
		s.Approved = *p.Approved
	}
}

// BaseVariant is one pattern realization of a sample. It optionally links to
// a record in the legacy ERP and owns gradings and spec sheets.
type BaseVariant struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	SampleID    uint   `json:"sample_id" gorm:"not null;index"`
	PatternFile string `json:"pattern_file" gorm:"size:500"`
	Approved    bool   `json:"approved" gorm:"not null;default:false"`
	ERPRecordID *int64 `json:"erp_record_id"`
	ERPModelID  *int64 `json:"erp_model_id"`

	// Relations
	Gradings   []Grading   `json:"gradings" gorm:"foreignKey:BaseVariantID;constraint:OnDelete:CASCADE"`
	SpecSheets []SpecSheet `json:"spec_sheets" gorm:"foreignKey:BaseVariantID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default pluralization.
func (BaseVariant) TableName() string {
	return "base_variants"
}

// BaseVariantPatch carries a partial base variant update.
type BaseVariantPatch struct {
	PatternFile *string `json:"pattern_file"`
	Approved    *bool   `json:"approved"`
}

// Apply merges the patch into b field by field.
func (p *BaseVariantPatch) Apply(b *BaseVariant) {
	if p.PatternFile != nil {
		b.PatternFile = *p.PatternFile
	}
	if p.Approved != nil {
		b.Approved = *p.Approved
	}
}

// Grading is one size-grading of a base variant.
type Grading struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	BaseVariantID uint   `json:"base_variant_id" gorm:"not null;index"`
	File          string `json:"file" gorm:"size:500"`
	SizeCurve     string `json:"size_curve" gorm:"type:text"`
}

// GradingPatch carries a partial grading update.
type GradingPatch struct {
	File      *string `json:"file"`
	SizeCurve *string `json:"size_curve"`
}

// Apply merges the patch into g field by field.
func (p *GradingPatch) Apply(g *Grading) {
	if p.File != nil {
		g.File = *p.File
	}
	if p.SizeCurve != nil {
		g.SizeCurve = *p.SizeCurve
	}
}

// SpecSheet is one technical sheet attached to a base variant.
type SpecSheet struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	BaseVariantID uint   `json:"base_variant_id" gorm:"not null;index"`
	Name          string `json:"name" gorm:"size:255"`
	File          string `json:"file" gorm:"size:500"`
}

// SpecSheetPatch carries a partial spec sheet update.
type SpecSheetPatch struct {
	Name *string `json:"name"`
	File *string `json:"file"`
}

// Apply merges the patch into s field by field.
func (p *SpecSheetPatch) Apply(s *SpecSheet) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.File != nil {
		s.File = *p.File
	}
}
