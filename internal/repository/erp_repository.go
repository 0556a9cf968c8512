package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "textilerp/internal/errors"
)

// ERPModel is a product model row in the legacy ERP.
type ERPModel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ERPRecord is a production record row in the legacy ERP, with the display
// names of its reference rows joined in.
type ERPRecord struct {
	ID            int64   `json:"id"`
	CutNumber     *string `json:"cut_number"`
	ModelID       *int64  `json:"model_id"`
	ModelName     *string `json:"model_name"`
	BrandID       *int64  `json:"brand_id"`
	BrandName     *string `json:"brand_name"`
	TypeID        *int64  `json:"type_id"`
	TypeName      *string `json:"type_name"`
	FitID         *int64  `json:"fit_id"`
	FitName       *string `json:"fit_name"`
	FabricID      *int64  `json:"fabric_id"`
	FabricName    *string `json:"fabric_name"`
	StatusName    *string `json:"status_name"`
	Approved      *bool   `json:"approved"`
	Image         *string `json:"image"`
	LinkedBaseID  *int64  `json:"linked_base_id"`
}

// ERPRepository is the narrow query/write surface against the legacy ERP
// database. The schema belongs to another system, so everything here is raw
// SQL; nothing migrates or owns those tables.
type ERPRepository interface {
	Ping(ctx context.Context) error
	Models(ctx context.Context, search string, limit int) ([]ERPModel, error)
	Records(ctx context.Context, search string, limit int) ([]ERPRecord, error)
	RecordByID(ctx context.Context, id int64) (*ERPRecord, error)
	UnlinkedRecords(ctx context.Context, search string, limit int) ([]ERPRecord, error)
	LinkedRecords(ctx context.Context, baseID uint) ([]ERPRecord, error)
	// LinkRecord points the remote record at a local base variant and
	// optionally propagates the approval flag.
	LinkRecord(ctx context.Context, recordID int64, baseID uint, approved *bool) error
	// UnlinkRecord clears the remote side of the link.
	UnlinkRecord(ctx context.Context, recordID int64) error
}

type erpRepository struct {
	db *gorm.DB
}

// NewERPRepository builds a repository over the legacy ERP connection.
// The db handle may be nil when no ERP is configured; every call then
// reports the ERP as unavailable.
func NewERPRepository(db *gorm.DB) ERPRepository {
	return &erpRepository{db: db}
}

func (r *erpRepository) guard() error {
	if r.db == nil {
		return apperrors.ErrERPUnavailable
	}
	return nil
}

func (r *erpRepository) Ping(ctx context.Context) error {
	if err := r.guard(); err != nil {
		return err
	}
	var one int
	if err := r.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return apperrors.ErrERPUnavailable
	}
	return nil
}

func (r *erpRepository) Models(ctx context.Context, search string, limit int) ([]ERPModel, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}
	var models []ERPModel
	q := r.db.WithContext(ctx)
	var err error
	if search != "" {
		err = q.Raw(`
			SELECT id, detalle AS name
			FROM modelo
			WHERE detalle LIKE ? AND estado = 1
			ORDER BY detalle
			LIMIT ?`, "%"+search+"%", limit).Scan(&models).Error
	} else {
		err = q.Raw(`
			SELECT id, detalle AS name
			FROM modelo
			WHERE estado = 1
			ORDER BY detalle
			LIMIT ?`, limit).Scan(&models).Error
	}
	if err != nil {
		return nil, err
	}
	return models, nil
}

const recordSelect = `
	SELECT
		r.id,
		r.n_corte   AS cut_number,
		r.id_modelo AS model_id,
		m.detalle   AS model_name,
		r.id_marca  AS brand_id,
		ma.detalle  AS brand_name,
		r.id_tipo   AS type_id,
		t.detalle   AS type_name,
		r.id_entalle AS fit_id,
		e.detalle   AS fit_name,
		r.id_tela   AS fabric_id,
		te.detalle  AS fabric_name,
		r.aprobado  AS approved,
		r.imagen    AS image,
		r.x_id_base AS linked_base_id
	FROM registro r
	LEFT JOIN modelo m  ON r.id_modelo = m.id
	LEFT JOIN marca ma  ON r.id_marca = ma.id
	LEFT JOIN tipo t    ON r.id_tipo = t.id
	LEFT JOIN entalle e ON r.id_entalle = e.id
	LEFT JOIN tela te   ON r.id_tela = te.id`

func (r *erpRepository) Records(ctx context.Context, search string, limit int) ([]ERPRecord, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}
	var pattern *string
	if search != "" {
		p := "%" + search + "%"
		pattern = &p
	}
	var records []ERPRecord
	err := r.db.WithContext(ctx).Raw(recordSelect+`
		WHERE (? IS NULL OR m.detalle LIKE ? OR r.n_corte LIKE ?)
		ORDER BY r.id DESC
		LIMIT ?`, pattern, pattern, pattern, limit).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *erpRepository) RecordByID(ctx context.Context, id int64) (*ERPRecord, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	var records []ERPRecord
	err := r.db.WithContext(ctx).Raw(recordSelect+`
		WHERE r.id = ?`, id).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.ErrERPRecordNotFound
	}
	return &records[0], nil
}

func (r *erpRepository) UnlinkedRecords(ctx context.Context, search string, limit int) ([]ERPRecord, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	var records []ERPRecord
	q := r.db.WithContext(ctx)
	var err error
	if search != "" {
		pattern := "%" + search + "%"
		err = q.Raw(`
			SELECT
				r.id,
				r.n_corte   AS cut_number,
				r.id_modelo AS model_id,
				m.detalle   AS model_name,
				es.detalle  AS status_name
			FROM registro r
			LEFT JOIN modelo m ON r.id_modelo = m.id
			LEFT JOIN estado es ON r.id_estado = es.id
			WHERE r.x_id_base IS NULL
			AND (m.detalle LIKE ? OR r.n_corte LIKE ? OR CAST(r.id AS CHAR) LIKE ?)
			ORDER BY r.id DESC
			LIMIT ?`, pattern, pattern, pattern, limit).Scan(&records).Error
	} else {
		err = q.Raw(`
			SELECT
				r.id,
				r.n_corte   AS cut_number,
				r.id_modelo AS model_id,
				m.detalle   AS model_name,
				es.detalle  AS status_name
			FROM registro r
			LEFT JOIN modelo m ON r.id_modelo = m.id
			LEFT JOIN estado es ON r.id_estado = es.id
			WHERE r.x_id_base IS NULL
			ORDER BY r.id DESC
			LIMIT ?`, limit).Scan(&records).Error
	}
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *erpRepository) LinkedRecords(ctx context.Context, baseID uint) ([]ERPRecord, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	var records []ERPRecord
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.n_corte   AS cut_number,
			r.id_modelo AS model_id,
			m.detalle   AS model_name,
			es.detalle  AS status_name,
			r.imagen    AS image
		FROM registro r
		LEFT JOIN modelo m ON r.id_modelo = m.id
		LEFT JOIN estado es ON r.id_estado = es.id
		WHERE r.x_id_base = ?
		ORDER BY r.id DESC`, baseID).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *erpRepository) LinkRecord(ctx context.Context, recordID int64, baseID uint, approved *bool) error {
	if err := r.guard(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Exec(
		"UPDATE registro SET x_id_base = ? WHERE id = ?", baseID, recordID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrERPRecordNotFound
	}
	if approved != nil {
		flag := 0
		if *approved {
			flag = 1
		}
		if err := r.db.WithContext(ctx).Exec(
			"UPDATE registro SET aprobado = ? WHERE id = ?", flag, recordID).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *erpRepository) UnlinkRecord(ctx context.Context, recordID int64) error {
	if err := r.guard(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Exec(
		"UPDATE registro SET x_id_base = NULL WHERE id = ?", recordID).Error
}
