package camps

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampService/internal/domain"
	campRepo "github.com/m04kA/SMC-CampService/internal/infra/storage/camp"
	"github.com/m04kA/SMC-CampService/internal/service/camps/models"
)

type fakeCampRepo struct {
	sectors map[int64]*domain.Sector
	tents   map[int64]*domain.Tent
	nextID  int64
}

func newFakeCampRepo() *fakeCampRepo {
	return &fakeCampRepo{
		sectors: make(map[int64]*domain.Sector),
		tents:   make(map[int64]*domain.Tent),
		nextID:  1,
	}
}

func (f *fakeCampRepo) addSector(id int64, name string) {
	f.sectors[id] = &domain.Sector{ID: id, EventID: 7, Name: name}
}

func (f *fakeCampRepo) addTent(id, sectorID int64, name string, capacity int) {
	f.tents[id] = &domain.Tent{ID: id, SectorID: sectorID, Name: name, Capacity: capacity}
}

func (f *fakeCampRepo) CreateSector(_ context.Context, sector *domain.Sector) (*domain.Sector, error) {
	sector.ID = f.nextID
	f.nextID++
	f.sectors[sector.ID] = sector
	return sector, nil
}

func (f *fakeCampRepo) GetSectorByID(_ context.Context, id int64) (*domain.Sector, error) {
	s, ok := f.sectors[id]
	if !ok {
		return nil, campRepo.ErrSectorNotFound
	}
	return s, nil
}

func (f *fakeCampRepo) RenameSector(_ context.Context, id int64, name string) error {
	s, ok := f.sectors[id]
	if !ok {
		return campRepo.ErrSectorNotFound
	}
	s.Name = name
	return nil
}

func (f *fakeCampRepo) DeleteSector(_ context.Context, id int64) error {
	if _, ok := f.sectors[id]; !ok {
		return campRepo.ErrSectorNotFound
	}
	delete(f.sectors, id)
	return nil
}

func (f *fakeCampRepo) CountTentsBySector(_ context.Context, sectorID int64) (int, error) {
	count := 0
	for _, t := range f.tents {
		if t.SectorID == sectorID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCampRepo) CreateTent(_ context.Context, tent *domain.Tent) (*domain.Tent, error) {
	for _, t := range f.tents {
		if t.SectorID == tent.SectorID && t.Name == tent.Name {
			return nil, campRepo.ErrDuplicateTentName
		}
	}
	tent.ID = f.nextID
	f.nextID++
	f.tents[tent.ID] = tent
	return tent, nil
}

func (f *fakeCampRepo) GetTentByID(_ context.Context, id int64) (*domain.Tent, error) {
	t, ok := f.tents[id]
	if !ok {
		return nil, campRepo.ErrTentNotFound
	}
	return t, nil
}

func (f *fakeCampRepo) GetTentsBySector(_ context.Context, sectorID int64) ([]*domain.Tent, error) {
	var out []*domain.Tent
	for _, t := range f.tents {
		if t.SectorID == sectorID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCampRepo) UpdateTent(_ context.Context, id int64, name string, capacity int) error {
	t, ok := f.tents[id]
	if !ok {
		return campRepo.ErrTentNotFound
	}
	for _, other := range f.tents {
		if other.ID != id && other.SectorID == t.SectorID && other.Name == name {
			return campRepo.ErrDuplicateTentName
		}
	}
	t.Name = name
	t.Capacity = capacity
	return nil
}

func (f *fakeCampRepo) DeleteTent(_ context.Context, id int64) error {
	if _, ok := f.tents[id]; !ok {
		return campRepo.ErrTentNotFound
	}
	delete(f.tents, id)
	return nil
}

func (f *fakeCampRepo) DeleteTentsBySector(_ context.Context, sectorID int64) (int64, error) {
	var deleted int64
	for id, t := range f.tents {
		if t.SectorID == sectorID {
			delete(f.tents, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeBookingRepo struct {
	occupancy      map[int64]int
	activeByTent   map[int64]bool
	activeBySector map[int64]bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		occupancy:      make(map[int64]int),
		activeByTent:   make(map[int64]bool),
		activeBySector: make(map[int64]bool),
	}
}

func (f *fakeBookingRepo) CountActiveMembers(_ context.Context, tentID int64) (int, error) {
	return f.occupancy[tentID], nil
}

func (f *fakeBookingRepo) HasActiveByTent(_ context.Context, tentID int64) (bool, error) {
	return f.activeByTent[tentID], nil
}

func (f *fakeBookingRepo) HasActiveBySector(_ context.Context, sectorID int64) (bool, error) {
	return f.activeBySector[sectorID], nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService(camp *fakeCampRepo, booking *fakeBookingRepo) *Service {
	return NewService(camp, booking, fakeTxManager{}, noopLogger{})
}

func TestCreateSector(t *testing.T) {
	repo := newFakeCampRepo()
	svc := newService(repo, newFakeBookingRepo())

	resp, err := svc.CreateSector(context.Background(), &models.CreateSectorRequest{EventID: 7, Name: "North"})
	require.NoError(t, err)
	assert.Equal(t, "North", resp.Name)
	assert.Equal(t, int64(7), resp.EventID)
	assert.Contains(t, repo.sectors, resp.ID)
}

func TestCreateSectorValidation(t *testing.T) {
	svc := newService(newFakeCampRepo(), newFakeBookingRepo())

	_, err := svc.CreateSector(context.Background(), &models.CreateSectorRequest{EventID: 0, Name: "North"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateSector(context.Background(), &models.CreateSectorRequest{EventID: 7, Name: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRenameSector(t *testing.T) {
	repo := newFakeCampRepo()
	repo.addSector(1, "North")
	svc := newService(repo, newFakeBookingRepo())

	err := svc.RenameSector(context.Background(), &models.RenameSectorRequest{SectorID: 1, Name: "South"})
	require.NoError(t, err)
	assert.Equal(t, "South", repo.sectors[1].Name)

	err = svc.RenameSector(context.Background(), &models.RenameSectorRequest{SectorID: 99, Name: "South"})
	assert.ErrorIs(t, err, ErrSectorNotFound)
}

func TestDeleteSectorWithTentsRejected(t *testing.T) {
	repo := newFakeCampRepo()
	repo.addSector(1, "North")
	repo.addTent(10, 1, "T-1", 4)
	svc := newService(repo, newFakeBookingRepo())

	err := svc.DeleteSector(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSectorHasTents)
	assert.Contains(t, repo.sectors, int64(1))
}

func TestDeleteSectorEmpty(t *testing.T) {
	repo := newFakeCampRepo()
	repo.addSector(1, "North")
	svc := newService(repo, newFakeBookingRepo())

	err := svc.DeleteSector(context.Background(), 1)
	require.NoError(t, err)
	assert.NotContains(t, repo.sectors, int64(1))
}

func TestCreateTent(t *testing.T) {
	repo := newFakeCampRepo()
	repo.addSector(1, "North")
	svc := newService(repo, newFakeBookingRepo())

	resp, err := svc.CreateTent(context.Background(), &models.CreateTentRequest{SectorID: 1, Name: "T-1", Capacity: 4})
	require.NoError(t, err)
	assert.Equal(t, "T-1", resp.Name)
	assert.Equal(t, 0, resp.Occupancy)

	// Дубликат имени внутри сектора
	_, err = svc.CreateTent(context.Background(), &models.CreateTentRequest{SectorID: 1, Name: "T-1", Capacity: 4})
	assert.ErrorIs(t, err, ErrDuplicateTentName)
}

func TestCreateTentSectorNotFound(t *testing.T) {
	svc := newService(newFakeCampRepo(), newFakeBookingRepo())

	_, err := svc.CreateTent(context.Background(), &models.CreateTentRequest{SectorID: 99, Name: "T-1", Capacity: 4})
	assert.ErrorIs(t, err, ErrSectorNotFound)
}

func TestCreateTentValidation(t *testing.T) {
	repo := newFakeCampRepo()
	repo.addSector(1, "North")
	svc := newService(repo, newFakeBookingRepo())

	_, err := svc.CreateTent(context.Background(), &models.CreateTentRequest{SectorID: 1, Name: "", Capacity: 4})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateTent(context.Background(), &models.CreateTentRequest{SectorID: 1, Name: "T-1", Capacity: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateTent(t *testing.T) {
	repo := newFakeCampRepo()
	repo.addSector(1, "North")
	repo.addTent(10, 1, "T-1", 4)
	repo.addTent(11, 1, "T-2", 4)
	svc := newService(repo, newFakeBookingRepo())

	err := svc.UpdateTent(context.Background(), &models.UpdateTentRequest{TentID: 10, Name: "T-1A", Capacity: 6})
	require.NoError(t, err)
	assert.Equal(t, "T-1A", repo.tents[10].Name)
	assert.Equal(t, 6, repo.tents[10].Capacity)

	err = svc.UpdateTent(context.Background(), &models.UpdateTentRequest{TentID: 10, Name: "T-2", Capacity: 6})
	assert.ErrorIs(t, err, ErrDuplicateTentName)

	err = svc.UpdateTent(context.Background(), &models.UpdateTentRequest{TentID: 99, Name: "T-9", Capacity: 4})
	assert.ErrorIs(t, err, ErrTentNotFound)
}

func TestListTentsWithOccupancy(t *testing.T) {
	repo := newFakeCampRepo()
	repo.addSector(1, "North")
	repo.addTent(10, 1, "T-1", 4)
	repo.addTent(11, 1, "T-2", 6)
	booking := newFakeBookingRepo()
	booking.occupancy[10] = 3
	svc := newService(repo, booking)

	resp, err := svc.ListTents(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "T-1", resp.Tents[0].Name)
	assert.Equal(t, 3, resp.Tents[0].Occupancy)
	assert.Equal(t, 0, resp.Tents[1].Occupancy)
}

func TestListTentsSectorNotFound(t *testing.T) {
	svc := newService(newFakeCampRepo(), newFakeBookingRepo())

	_, err := svc.ListTents(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSectorNotFound)
}

func TestDeleteTentWithActiveBookingsRejected(t *testing.T) {
	repo := newFakeCampRepo()
	repo.addSector(1, "North")
	repo.addTent(10, 1, "T-1", 4)
	booking := newFakeBookingRepo()
	booking.activeByTent[10] = true
	svc := newService(repo, booking)

	err := svc.DeleteTent(context.Background(), 10)
	assert.ErrorIs(t, err, ErrTentHasActiveBookings)
	assert.Contains(t, repo.tents, int64(10))
}

func TestDeleteTent(t *testing.T) {
	repo := newFakeCampRepo()
	repo.addSector(1, "North")
	repo.addTent(10, 1, "T-1", 4)
	svc := newService(repo, newFakeBookingRepo())

	err := svc.DeleteTent(context.Background(), 10)
	require.NoError(t, err)
	assert.NotContains(t, repo.tents, int64(10))

	err = svc.DeleteTent(context.Background(), 10)
	assert.ErrorIs(t, err, ErrTentNotFound)
}

func TestBulkDeleteTents(t *testing.T) {
	repo := newFakeCampRepo()
	repo.addSector(1, "North")
	repo.addSector(2, "South")
	repo.addTent(10, 1, "T-1", 4)
	repo.addTent(11, 1, "T-2", 4)
	repo.addTent(12, 2, "T-1", 4)
	svc := newService(repo, newFakeBookingRepo())

	resp, err := svc.BulkDeleteTents(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Deleted)

	// Палатки соседнего сектора не задеты
	assert.Contains(t, repo.tents, int64(12))
}

func TestBulkDeleteTentsWithActiveBookingsRejected(t *testing.T) {
	repo := newFakeCampRepo()
	repo.addSector(1, "North")
	repo.addTent(10, 1, "T-1", 4)
	booking := newFakeBookingRepo()
	booking.activeBySector[1] = true
	svc := newService(repo, booking)

	_, err := svc.BulkDeleteTents(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSectorHasActiveBookings)
	assert.Contains(t, repo.tents, int64(10))
}
