package model

import "github.com/shopspring/decimal"

// FabricColor is the fixed color classification of a fabric.
type FabricColor string

const (
	ColorBlue  FabricColor = "blue"
	ColorBlack FabricColor = "black"
)

// Fabric is a reference-table entry describing one fabric.
type Fabric struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	Name          string           `json:"name" gorm:"size:255;not null"`
	Grammage      *decimal.Decimal `json:"grammage" gorm:"type:decimal(10,2)"`
	Elasticity    string           `json:"elasticity" gorm:"size:100"`
	Supplier      string           `json:"supplier" gorm:"size:255"`
	StandardWidth *decimal.Decimal `json:"standard_width" gorm:"type:decimal(10,2)"`
	Color         *FabricColor     `json:"color" gorm:"type:varchar(20)"`
}

// FabricPatch carries a partial fabric update. Nil fields are left untouched.
type FabricPatch struct {
	Name          *string          `json:"name"`
	Grammage      *decimal.Decimal `json:"grammage"`
	Elasticity    *string          `json:"elasticity"`
	Supplier      *string          `json:"supplier"`
	StandardWidth *decimal.Decimal `json:"standard_width"`
	Color         *FabricColor     `json:"color"`
}

// Apply merges the patch into f field by field.
func (p *FabricPatch) Apply(f *Fabric) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Grammage != nil {
		f.Grammage = p.Grammage
	}
	if p.Elasticity != nil {
		f.Elasticity = *p.Elasticity
	}
	if p.Supplier != nil {
		f.Supplier = *p.Supplier
	}
	if p.StandardWidth != nil {
		f.StandardWidth = p.StandardWidth
	}
	if p.Color != nil {
		f.Color = p.Color
	}
}

// Brand is a reference-table entry naming a brand.
type Brand struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:255;not null"`
}

// BrandPatch carries a partial brand update.
type BrandPatch struct {
	Name *string `json:"name"`
}

// Apply merges the patch into b.
func (p *BrandPatch) Apply(b *Brand) {
	if p.Name != nil {
		b.Name = *p.Name
	}
}

// FitType is a reference-table entry naming a garment fit.
type FitType struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:255;not null"`
}

// FitTypePatch carries a partial fit type update.
type FitTypePatch struct {
	Name *string `json:"name"`
}

// Apply merges the patch into f.
func (p *FitTypePatch) Apply(f *FitType) {
	if p.Name != nil {
		f.Name = *p.Name
	}
}

// ProductType is a reference-table entry naming a product type.
type ProductType struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:255;not null"`
}

// ProductTypePatch carries a partial product type update.
type ProductTypePatch struct {
	Name *string `json:"name"`
}

// Apply merges the patch into t.
func (p *ProductTypePatch) Apply(t *ProductType) {
	if p.Name != nil {
		t.Name = *p.Name
	}
}
