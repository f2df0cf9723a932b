package disposal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/domain/dto"
	"github.com/ougirez/ecotrack/internal/pkg/constants"
	"github.com/ougirez/ecotrack/internal/pkg/store"
	"github.com/ougirez/ecotrack/internal/service/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	store.Store

	users     map[int64]*domain.User
	wastes    map[int64]*domain.Waste
	locations map[int64]*domain.Location
	disposals map[int64]*domain.Disposal

	created  *domain.Disposal
	updated  *domain.Disposal
	deleted  int64
	audits   []*domain.AuditRecord
	auditErr error
}

func newFakeStore() *fakeStore {
	avg := 2.0
	return &fakeStore{
		users:     map[int64]*domain.User{1: {ID: 1}},
		wastes:    map[int64]*domain.Waste{10: {ID: 10, AverageWeight: &avg}},
		locations: map[int64]*domain.Location{100: {ID: 100}},
		disposals: map[int64]*domain.Disposal{},
	}
}

func (f *fakeStore) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) GetWasteByID(_ context.Context, id int64) (*domain.Waste, error) {
	if w, ok := f.wastes[id]; ok {
		return w, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) GetLocationByID(_ context.Context, id int64) (*domain.Location, error) {
	if l, ok := f.locations[id]; ok {
		return l, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) GetDisposalByID(_ context.Context, id int64) (*domain.Disposal, error) {
	if d, ok := f.disposals[id]; ok {
		return d, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) CreateDisposal(_ context.Context, d *domain.Disposal) error {
	d.ID = int64(len(f.disposals) + 1)
	f.disposals[d.ID] = d
	f.created = d
	return nil
}

func (f *fakeStore) UpdateDisposal(_ context.Context, d *domain.Disposal) error {
	f.disposals[d.ID] = d
	f.updated = d
	return nil
}

func (f *fakeStore) DeleteDisposal(_ context.Context, id int64) error {
	delete(f.disposals, id)
	f.deleted = id
	return nil
}

func (f *fakeStore) InsertAudit(_ context.Context, record *domain.AuditRecord) error {
	if f.auditErr != nil {
		return f.auditErr
	}
	f.audits = append(f.audits, record)
	return nil
}

func registerRequest() *dto.RegisterDisposalRequest {
	return &dto.RegisterDisposalRequest{
		UserID:      1,
		WasteID:     10,
		Name:        "botellas",
		MeasureType: domain.MeasureWeight,
		MeasureUnit: 50,
		WeightUnit:  domain.UnitPound,
		Datetime:    time.Now(),
		LocationID:  100,
	}
}

func TestRegister_ConvertsPoundsToKilograms(t *testing.T) {
	fs := newFakeStore()
	svc := NewDisposalService(fs, audit.NewAuditService(fs))

	disposal, err := svc.Register(context.Background(), registerRequest(), 1)
	require.NoError(t, err)
	assert.InDelta(t, 22.6796185, disposal.Weight, 1e-9)
	require.NotNil(t, fs.created)
	assert.InDelta(t, 22.6796185, fs.created.Weight, 1e-9)
}

func TestRegister_UnitCountUsesAverageWeight(t *testing.T) {
	fs := newFakeStore()
	svc := NewDisposalService(fs, audit.NewAuditService(fs))

	request := registerRequest()
	request.MeasureType = domain.MeasureUnit
	request.MeasureUnit = 5
	request.WeightUnit = ""

	disposal, err := svc.Register(context.Background(), request, 1)
	require.NoError(t, err)
	assert.InDelta(t, 10, disposal.Weight, 1e-9)
}

func TestRegister_MissingAverageWeight(t *testing.T) {
	fs := newFakeStore()
	fs.wastes[10].AverageWeight = nil
	svc := NewDisposalService(fs, audit.NewAuditService(fs))

	request := registerRequest()
	request.MeasureType = domain.MeasureUnit
	request.MeasureUnit = 5

	_, err := svc.Register(context.Background(), request, 1)
	assert.ErrorIs(t, err, constants.ErrMissingAverageWeight)
	assert.Nil(t, fs.created)
}

func TestRegister_UnknownReferences(t *testing.T) {
	fs := newFakeStore()
	svc := NewDisposalService(fs, audit.NewAuditService(fs))

	request := registerRequest()
	request.UserID = 999

	_, err := svc.Register(context.Background(), request, 1)
	assert.ErrorIs(t, err, constants.ErrDBNotFound)

	request = registerRequest()
	request.WasteID = 999
	_, err = svc.Register(context.Background(), request, 1)
	assert.ErrorIs(t, err, constants.ErrDBNotFound)

	request = registerRequest()
	request.LocationID = 999
	_, err = svc.Register(context.Background(), request, 1)
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
}

func TestRegister_WritesAuditRecord(t *testing.T) {
	fs := newFakeStore()
	svc := NewDisposalService(fs, audit.NewAuditService(fs))

	_, err := svc.Register(context.Background(), registerRequest(), 7)
	require.NoError(t, err)

	require.Len(t, fs.audits, 1)
	record := fs.audits[0]
	assert.Equal(t, domain.AuditCreate, record.OperationType)
	assert.Equal(t, "user_waste", record.TableName)
	assert.Equal(t, int64(7), record.PerformedBy)
	assert.Nil(t, record.OldValues)
	assert.NotEmpty(t, record.NewValues)
}

func TestRegister_AuditFailureDoesNotFailWrite(t *testing.T) {
	fs := newFakeStore()
	fs.auditErr = errors.New("audit table unavailable")
	svc := NewDisposalService(fs, audit.NewAuditService(fs))

	disposal, err := svc.Register(context.Background(), registerRequest(), 1)
	require.NoError(t, err)
	assert.NotZero(t, disposal.ID)
}

func TestUpdate_RecomputesWeightOnly(t *testing.T) {
	fs := newFakeStore()
	fs.disposals[5] = &domain.Disposal{ID: 5, UserID: 1, WasteID: 10, Name: "latas", Weight: 3, LocationID: 100}
	svc := NewDisposalService(fs, audit.NewAuditService(fs))

	updated, err := svc.Update(context.Background(), 5, &dto.UpdateDisposalRequest{
		MeasureType: domain.MeasureWeight,
		MeasureUnit: 2,
		WeightUnit:  domain.UnitQuintal,
	}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 90.718474, updated.Weight, 1e-9)
	assert.Equal(t, "latas", updated.Name)

	require.Len(t, fs.audits, 1)
	assert.Equal(t, domain.AuditUpdate, fs.audits[0].OperationType)
	assert.NotEmpty(t, fs.audits[0].OldValues)
}

func TestDelete(t *testing.T) {
	fs := newFakeStore()
	fs.disposals[5] = &domain.Disposal{ID: 5, UserID: 1, WasteID: 10, LocationID: 100}
	svc := NewDisposalService(fs, audit.NewAuditService(fs))

	require.NoError(t, svc.Delete(context.Background(), 5, 1))
	assert.Equal(t, int64(5), fs.deleted)

	require.Len(t, fs.audits, 1)
	assert.Equal(t, domain.AuditDelete, fs.audits[0].OperationType)

	err := svc.Delete(context.Background(), 5, 1)
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
}
