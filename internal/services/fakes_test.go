package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/repositories"
	"github.com/plazacomercial/locales-service/internal/utils"
)

// Each fake embeds its interface so unimplemented methods panic if a
// test reaches them.

/* ---------- users ---------- */

type fakeUserRepo struct {
	repositories.UserRepository
	mu     sync.Mutex
	byID   map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[int64]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Username == u.Username {
			return utils.ErrUsernameExists
		}
	}
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

/* ---------- refresh tokens ---------- */

type fakeTokenRepo struct {
	mu         sync.Mutex
	byHash     map[string]*models.RefreshToken
	cleanupErr []error
	cleanups   int
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{byHash: map[string]*models.RefreshToken{}}
}

func (f *fakeTokenRepo) CreateRefreshToken(_ context.Context, t *models.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *t
	f.byHash[utils.HashToken(t.Token)] = &cp
	return nil
}

func (f *fakeTokenRepo) GetRefreshToken(_ context.Context, raw string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.byHash[utils.HashToken(raw)]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTokenRepo) RemoveRefreshToken(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, t := range f.byHash {
		if t.ID == id {
			delete(f.byHash, k)
		}
	}
	return nil
}

func (f *fakeTokenRepo) RemoveAllRefreshTokensByUserID(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, t := range f.byHash {
		if t.UserID == userID {
			delete(f.byHash, k)
		}
	}
	return nil
}

func (f *fakeTokenRepo) CleanupExpiredRefreshTokens(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleanups++
	if len(f.cleanupErr) > 0 {
		err := f.cleanupErr[0]
		f.cleanupErr = f.cleanupErr[1:]
		return err
	}
	for k, t := range f.byHash {
		if t.IsExpired() {
			delete(f.byHash, k)
		}
	}
	return nil
}

func (f *fakeTokenRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byHash)
}

/* ---------- catalog ---------- */

type fakeCategoriaRepo struct {
	repositories.CategoriaRepository
	byNombre map[string]*models.Categoria
}

func (f *fakeCategoriaRepo) GetByNombre(_ context.Context, nombre string) (*models.Categoria, error) {
	return f.byNombre[nombre], nil
}

type fakeZonaRepo struct {
	repositories.ZonaRepository
	byID   map[int64]*models.Zona
	nextID int64
}

func newFakeZonaRepo(zonas ...*models.Zona) *fakeZonaRepo {
	f := &fakeZonaRepo{byID: map[int64]*models.Zona{}}
	for _, z := range zonas {
		f.byID[z.ID] = z
		f.nextID = max(f.nextID, z.ID)
	}
	return f
}

func (f *fakeZonaRepo) Create(_ context.Context, z *models.Zona) error {
	for _, existing := range f.byID {
		if existing.Codigo == z.Codigo {
			return errUniqueViolation
		}
	}
	f.nextID++
	z.ID = f.nextID
	z.RowVersion = 1
	f.byID[z.ID] = z
	return nil
}

func (f *fakeZonaRepo) GetByID(_ context.Context, id int64) (*models.Zona, error) {
	return f.byID[id], nil
}

func (f *fakeZonaRepo) UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Zona) error) error {
	z, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	cp := *z
	if err := mutate(&cp); err != nil {
		return err
	}
	cp.RowVersion++
	f.byID[id] = &cp
	return nil
}

type fakeMetrajeRepo struct {
	repositories.MetrajeRepository
	byID map[int64]*models.Metraje
}

func (f *fakeMetrajeRepo) GetByID(_ context.Context, id int64) (*models.Metraje, error) {
	return f.byID[id], nil
}

// fakeLocalRepo resolves Zona and Metraje from its sibling fakes the
// way the joined reads do.
type fakeLocalRepo struct {
	repositories.LocalRepository
	byID     map[int64]*models.Local
	nextID   int64
	zonas    *fakeZonaRepo
	metrajes *fakeMetrajeRepo

	fetchCalls int
	fetchErr   error
}

func newFakeLocalRepo(zonas *fakeZonaRepo, metrajes *fakeMetrajeRepo) *fakeLocalRepo {
	return &fakeLocalRepo{byID: map[int64]*models.Local{}, zonas: zonas, metrajes: metrajes}
}

func (f *fakeLocalRepo) put(l *models.Local) *models.Local {
	if l.ID == 0 {
		f.nextID++
		l.ID = f.nextID
	}
	f.nextID = max(f.nextID, l.ID)
	if l.RowVersion == 0 {
		l.RowVersion = 1
	}
	f.byID[l.ID] = l
	return l
}

func (f *fakeLocalRepo) joined(l *models.Local) *models.Local {
	cp := *l
	cp.Zona = f.zonas.byID[l.ZonaID]
	cp.Metraje = f.metrajes.byID[l.MetrajeID]
	return &cp
}

func (f *fakeLocalRepo) Create(_ context.Context, l *models.Local) error {
	cp := *l
	f.put(&cp)
	l.ID = cp.ID
	l.RowVersion = cp.RowVersion
	return nil
}

func (f *fakeLocalRepo) GetByID(_ context.Context, id int64) (*models.Local, error) {
	l, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return f.joined(l), nil
}

func (f *fakeLocalRepo) ListSubniveles(_ context.Context, parentID int64) ([]*models.Local, error) {
	var out []*models.Local
	for id := int64(1); id <= f.nextID; id++ {
		if l, ok := f.byID[id]; ok && l.SubnivelDeID != nil && *l.SubnivelDeID == parentID {
			out = append(out, f.joined(l))
		}
	}
	return out, nil
}

func (f *fakeLocalRepo) ListByClienteID(_ context.Context, clienteID int64) ([]*models.Local, error) {
	var out []*models.Local
	for id := int64(1); id <= f.nextID; id++ {
		if l, ok := f.byID[id]; ok && l.ClienteID != nil && *l.ClienteID == clienteID {
			out = append(out, f.joined(l))
		}
	}
	return out, nil
}

func (f *fakeLocalRepo) FetchUnitsByZoneCodes(_ context.Context, codes []string) ([]*models.Local, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	want := map[string]bool{}
	for _, c := range codes {
		want[c] = true
	}
	var out []*models.Local
	for id := int64(1); id <= f.nextID; id++ {
		l, ok := f.byID[id]
		if !ok {
			continue
		}
		j := f.joined(l)
		if want[j.ZoneCode()] {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeLocalRepo) UpdateWithRetry(_ context.Context, id int64, mutate func(*models.Local) error) error {
	l, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	cp := *l
	if err := mutate(&cp); err != nil {
		return err
	}
	cp.RowVersion++
	cp.Zona, cp.Metraje = nil, nil
	f.byID[id] = &cp
	return nil
}

func (f *fakeLocalRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

/* ---------- clientes ---------- */

type fakeClienteRepo struct {
	repositories.ClienteRepository
	byID   map[int64]*models.Cliente
	nextID int64
	locals *fakeLocalRepo

	// beforeLink runs ahead of the locked re-read, standing in for a
	// concurrent request that links the local first.
	beforeLink func(l *models.Local)
}

func (f *fakeClienteRepo) CreateForLocal(_ context.Context, c *models.Cliente, localID int64) error {
	l, ok := f.locals.byID[localID]
	if !ok {
		return pgx.ErrNoRows
	}
	if f.beforeLink != nil {
		f.beforeLink(l)
	}
	if l.ClienteID != nil {
		return fmt.Errorf("local %d is linked: %w", localID, utils.ErrConflict)
	}
	f.nextID++
	c.ID = f.nextID
	c.RowVersion = 1
	f.byID[c.ID] = c
	l.ClienteID = utils.Ptr(c.ID)
	return nil
}

func (f *fakeClienteRepo) GetByID(_ context.Context, id int64) (*models.Cliente, error) {
	return f.byID[id], nil
}

func (f *fakeClienteRepo) List(_ context.Context) ([]*models.Cliente, error) {
	var out []*models.Cliente
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClienteRepo) UpdateWithRetry(_ context.Context, id int64, mutate func(*models.Cliente) error) error {
	c, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	cp := *c
	if err := mutate(&cp); err != nil {
		return err
	}
	cp.RowVersion++
	f.byID[id] = &cp
	return nil
}
