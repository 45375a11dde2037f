package bulk_create_tents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampService/internal/domain"
	campRepo "github.com/m04kA/SMC-CampService/internal/infra/storage/camp"
)

type fakeCampRepo struct {
	sectors  map[int64]*domain.Sector
	existing map[string]bool // занятые имена в секторе
	created  []*domain.Tent
}

func (f *fakeCampRepo) GetSectorByID(_ context.Context, id int64) (*domain.Sector, error) {
	sector, ok := f.sectors[id]
	if !ok {
		return nil, campRepo.ErrSectorNotFound
	}
	return sector, nil
}

func (f *fakeCampRepo) CreateTents(_ context.Context, tents []*domain.Tent) ([]*domain.Tent, error) {
	// Как и в реальном хранилище, коллизия имени валит всю вставку целиком
	for _, tent := range tents {
		if f.existing[tent.Name] {
			return nil, campRepo.ErrDuplicateTentName
		}
	}
	for i, tent := range tents {
		tent.ID = int64(i + 1)
	}
	f.created = tents
	return tents, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validBulkRequest() *Request {
	return &Request{
		SectorID:    3,
		NamePrefix:  "T",
		NamePattern: "DASH_NUMBER",
		Quantity:    3,
		StartFrom:   5,
		Capacity:    4,
	}
}

func TestExecuteCreatesSeries(t *testing.T) {
	repo := &fakeCampRepo{sectors: map[int64]*domain.Sector{3: {ID: 3}}}
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validBulkRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Created)
	require.Len(t, resp.Tents, 3)
	assert.Equal(t, "T-5", resp.Tents[0].Name)
	assert.Equal(t, "T-6", resp.Tents[1].Name)
	assert.Equal(t, "T-7", resp.Tents[2].Name)
	assert.Equal(t, 4, resp.Tents[0].Capacity)
}

func TestExecuteCollisionCreatesNothing(t *testing.T) {
	repo := &fakeCampRepo{
		sectors:  map[int64]*domain.Sector{3: {ID: 3}},
		existing: map[string]bool{"T-6": true},
	}
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validBulkRequest())
	assert.ErrorIs(t, err, ErrDuplicateTentName)
	assert.Empty(t, repo.created)
}

func TestExecuteSectorNotFound(t *testing.T) {
	uc := NewUseCase(&fakeCampRepo{sectors: map[int64]*domain.Sector{}}, fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validBulkRequest())
	assert.ErrorIs(t, err, ErrSectorNotFound)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&fakeCampRepo{sectors: map[int64]*domain.Sector{3: {ID: 3}}}, fakeTxManager{}, noopLogger{})

	req := validBulkRequest()
	req.Quantity = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validBulkRequest()
	req.Quantity = 501
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validBulkRequest()
	req.NamePattern = "ROMAN_NUMERALS"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validBulkRequest()
	req.NamePrefix = "  "
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// JUST_NUMBER не требует префикса
	req = validBulkRequest()
	req.NamePrefix = ""
	req.NamePattern = "JUST_NUMBER"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}
