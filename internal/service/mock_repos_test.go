package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/mmark3273/sibur/internal/model"
	"github.com/mmark3273/sibur/internal/repository"
)

// ── mock UploadRepository ──

type mockUploadRepo struct {
	uploads map[int64]*model.Upload
	rows    map[int64][]model.UploadRow
	nextID  int64
	err     error
}

func newMockUploadRepo() *mockUploadRepo {
	return &mockUploadRepo{
		uploads: make(map[int64]*model.Upload),
		rows:    make(map[int64][]model.UploadRow),
		nextID:  1,
	}
}

func (m *mockUploadRepo) Create(_ context.Context, upload *model.Upload, rows []model.UploadRow) error {
	if m.err != nil {
		return m.err
	}
	upload.ID = m.nextID
	m.nextID++
	m.uploads[upload.ID] = upload
	for i := range rows {
		rows[i].UploadID = upload.ID
	}
	m.rows[upload.ID] = rows
	return nil
}

func (m *mockUploadRepo) GetByID(_ context.Context, id int64) (*model.Upload, error) {
	if u, ok := m.uploads[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUploadRepo) Latest(_ context.Context) (*model.Upload, error) {
	var latest *model.Upload
	for _, u := range m.uploads {
		if latest == nil || u.ID > latest.ID {
			latest = u
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (m *mockUploadRepo) ListRows(_ context.Context, uploadID int64) ([]model.UploadRow, error) {
	return m.rows[uploadID], nil
}

// ── mock MarkRepository ──

type mockMarkRepo struct {
	marks map[string]*model.Mark // key day|plate|kind|slot
}

func newMockMarkRepo() *mockMarkRepo {
	return &mockMarkRepo{marks: make(map[string]*model.Mark)}
}

func markKey(m *model.Mark) string {
	return m.Day + "|" + m.VehiclePlate + "|" + m.Kind + "|" + m.Slot
}

func (m *mockMarkRepo) Upsert(_ context.Context, mark *model.Mark) error {
	key := markKey(mark)
	if existing, ok := m.marks[key]; ok {
		existing.Value = mark.Value
		return nil
	}
	cp := *mark
	m.marks[key] = &cp
	return nil
}

func (m *mockMarkRepo) ListByDayKind(_ context.Context, day, kind string) ([]model.Mark, error) {
	var out []model.Mark
	for _, mark := range m.marks {
		if mark.Day == day && mark.Kind == kind {
			out = append(out, *mark)
		}
	}
	return out, nil
}

// ── mock VehicleRefRepository ──

type mockVehicleRefRepo struct {
	refs map[string]*model.VehicleRef
}

func newMockVehicleRefRepo() *mockVehicleRefRepo {
	return &mockVehicleRefRepo{refs: make(map[string]*model.VehicleRef)}
}

func (m *mockVehicleRefRepo) List(_ context.Context) ([]model.VehicleRef, error) {
	plates := make([]string, 0, len(m.refs))
	for p := range m.refs {
		plates = append(plates, p)
	}
	sort.Strings(plates)
	out := make([]model.VehicleRef, 0, len(plates))
	for _, p := range plates {
		out = append(out, *m.refs[p])
	}
	return out, nil
}

func (m *mockVehicleRefRepo) Upsert(_ context.Context, ref *model.VehicleRef) error {
	cp := *ref
	m.refs[ref.VehiclePlate] = &cp
	return nil
}

func (m *mockVehicleRefRepo) Delete(_ context.Context, plate string) error {
	delete(m.refs, plate)
	return nil
}

// ── mock PaletteRepository ──

type mockPaletteRepo struct {
	palette *model.Palette
}

func newMockPaletteRepo() *mockPaletteRepo {
	return &mockPaletteRepo{}
}

func (m *mockPaletteRepo) Get(_ context.Context) (*model.Palette, error) {
	if m.palette == nil {
		m.palette = model.DefaultPalette()
	}
	return m.palette, nil
}

func (m *mockPaletteRepo) Save(_ context.Context, p *model.Palette) error {
	cp := *p
	cp.ID = 1
	m.palette = &cp
	return nil
}

// newMockRepository bundles fresh mocks into the aggregate.
func newMockRepository() (*repository.Repository, *mockUploadRepo, *mockMarkRepo, *mockVehicleRefRepo, *mockPaletteRepo) {
	uploads := newMockUploadRepo()
	marks := newMockMarkRepo()
	refs := newMockVehicleRefRepo()
	palette := newMockPaletteRepo()
	repo := &repository.Repository{
		Upload:     uploads,
		Mark:       marks,
		VehicleRef: refs,
		Palette:    palette,
	}
	return repo, uploads, marks, refs, palette
}
