package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"textilerp/internal/audit"
	"textilerp/internal/auth"
	"textilerp/internal/model"
	"textilerp/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPermissionRepository is a mock implementation of repository.PermissionRepository.
type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) FindByUserID(ctx context.Context, userID uint) (*model.PermissionOverride, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PermissionOverride), args.Error(1)
}

func (m *MockPermissionRepository) Upsert(ctx context.Context, override *model.PermissionOverride) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

func (m *MockPermissionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockAuditRepository is a mock implementation of repository.AuditRepository.
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Create(ctx context.Context, entry *model.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) FindByID(ctx context.Context, id uint) (*model.AuditEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuditEntry), args.Error(1)
}

func (m *MockAuditRepository) List(ctx context.Context, filter repository.AuditFilter) ([]model.AuditEntry, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.AuditEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditRepository) Stats(ctx context.Context) (*repository.AuditStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AuditStats), args.Error(1)
}

func (m *MockAuditRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockBaseVariantRepository is a mock implementation of repository.BaseVariantRepository.
type MockBaseVariantRepository struct {
	mock.Mock
}

func (m *MockBaseVariantRepository) Create(ctx context.Context, base *model.BaseVariant) error {
	args := m.Called(ctx, base)
	return args.Error(0)
}

func (m *MockBaseVariantRepository) FindByID(ctx context.Context, id uint) (*model.BaseVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BaseVariant), args.Error(1)
}

func (m *MockBaseVariantRepository) FindByIDFull(ctx context.Context, id uint) (*model.BaseVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BaseVariant), args.Error(1)
}

func (m *MockBaseVariantRepository) List(ctx context.Context) ([]model.BaseVariant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BaseVariant), args.Error(1)
}

func (m *MockBaseVariantRepository) Update(ctx context.Context, base *model.BaseVariant) error {
	args := m.Called(ctx, base)
	return args.Error(0)
}

func (m *MockBaseVariantRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockERPRepository is a mock implementation of repository.ERPRepository.
type MockERPRepository struct {
	mock.Mock
}

func (m *MockERPRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockERPRepository) Models(ctx context.Context, search string, limit int) ([]repository.ERPModel, error) {
	args := m.Called(ctx, search, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ERPModel), args.Error(1)
}

func (m *MockERPRepository) Records(ctx context.Context, search string, limit int) ([]repository.ERPRecord, error) {
	args := m.Called(ctx, search, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ERPRecord), args.Error(1)
}

func (m *MockERPRepository) RecordByID(ctx context.Context, id int64) (*repository.ERPRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ERPRecord), args.Error(1)
}

func (m *MockERPRepository) UnlinkedRecords(ctx context.Context, search string, limit int) ([]repository.ERPRecord, error) {
	args := m.Called(ctx, search, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ERPRecord), args.Error(1)
}

func (m *MockERPRepository) LinkedRecords(ctx context.Context, baseID uint) ([]repository.ERPRecord, error) {
	args := m.Called(ctx, baseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ERPRecord), args.Error(1)
}

func (m *MockERPRepository) LinkRecord(ctx context.Context, recordID int64, baseID uint, approved *bool) error {
	args := m.Called(ctx, recordID, baseID, approved)
	return args.Error(0)
}

func (m *MockERPRepository) UnlinkRecord(ctx context.Context, recordID int64) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

// MockFabricRepository is a mock implementation of repository.FabricRepository.
type MockFabricRepository struct {
	mock.Mock
}

func (m *MockFabricRepository) Create(ctx context.Context, fabric *model.Fabric) error {
	args := m.Called(ctx, fabric)
	return args.Error(0)
}

func (m *MockFabricRepository) FindByID(ctx context.Context, id uint) (*model.Fabric, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fabric), args.Error(1)
}

func (m *MockFabricRepository) List(ctx context.Context) ([]model.Fabric, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Fabric), args.Error(1)
}

func (m *MockFabricRepository) Update(ctx context.Context, fabric *model.Fabric) error {
	args := m.Called(ctx, fabric)
	return args.Error(0)
}

func (m *MockFabricRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPermissionService is a mock implementation of PermissionService.
type MockPermissionService struct {
	mock.Mock
}

func (m *MockPermissionService) Effective(ctx context.Context, user *model.User) (auth.CapabilitySet, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(auth.CapabilitySet), args.Error(1)
}

func (m *MockPermissionService) EffectiveForUser(ctx context.Context, userID uint) (auth.CapabilitySet, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(auth.CapabilitySet), args.Error(1)
}

func (m *MockPermissionService) SetOverride(ctx context.Context, actor audit.Actor, userID uint, flags *model.PermissionOverride) (*model.PermissionOverride, error) {
	args := m.Called(ctx, actor, userID, flags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PermissionOverride), args.Error(1)
}

func (m *MockPermissionService) CreateDefaults(ctx context.Context, userID uint, role model.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockPermissionService) Invalidate(ctx context.Context, userID uint) {
	m.Called(ctx, userID)
}
