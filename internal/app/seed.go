package app

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/plazacomercial/locales-service/internal/layout"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/repositories"
	"github.com/plazacomercial/locales-service/internal/utils"
)

const (
	SeedCategoriaNombre  = "Locales comerciales"
	DefaultStaffUsername = "staff"
	DefaultStaffEmail    = "staff@plazacomercial.test"
)

// SeedRepos groups the repositories SeedAllTestData writes through.
type SeedRepos struct {
	Categorias repositories.CategoriaRepository
	Zonas      repositories.ZonaRepository
	Metrajes   repositories.MetrajeRepository
	Locales    repositories.LocalRepository
	Users      repositories.UserRepository
}

type seedFootprint struct {
	area      string
	perimetro string
}

var seedFootprints = map[string]seedFootprint{
	"../assets/tipos_locales/chico.png":   {area: "18.5", perimetro: "17.4"},
	"../assets/tipos_locales/mediano.png": {area: "24.5", perimetro: "20.1"},
	"../assets/tipos_locales/grande.png":  {area: "40", perimetro: "26.3"},
}

// SeedAllTestData creates one zona, metraje and local for every node of
// the layout. A default staff user is added only when staffPassword is
// set. It is idempotent: if the first layout code already has a zona,
// nothing is written.
func SeedAllTestData(ctx context.Context, tbl *layout.Table, repos SeedRepos, staffPassword string) error {
	if staffPassword == "" {
		utils.Logger.Warn("SEED_STAFF_PASSWORD not set; skipping default staff user")
	} else if err := seedDefaultStaff(ctx, repos.Users, staffPassword); err != nil {
		return fmt.Errorf("seed default staff: %w", err)
	}

	groups := tbl.Groups()
	if len(groups) == 0 || len(groups[0].Locales) == 0 {
		utils.Logger.Info("Layout is empty; nothing to seed.")
		return nil
	}

	// IDEMPOTENCY CHECK: the first layout code acts as the sentinel.
	sentinel := groups[0].Locales[0].ZonaCodigo
	if existing, err := repos.Zonas.GetByCodigo(ctx, sentinel); err != nil {
		return fmt.Errorf("failed to check for sentinel zona: %w", err)
	} else if existing != nil {
		utils.Logger.Info("Seed data already present; skipping seeding.")
		return nil
	}

	if cat, err := repos.Categorias.GetByNombre(ctx, SeedCategoriaNombre); err != nil {
		return err
	} else if cat == nil {
		if err := repos.Categorias.Create(ctx, &models.Categoria{Nombre: SeedCategoriaNombre}); err != nil && !utils.IsUniqueViolation(err) {
			return fmt.Errorf("seed categoria: %w", err)
		}
	}

	s := &seeder{repos: repos, metrajes: map[string]int64{}}
	for _, g := range groups {
		for i := range g.Locales {
			if err := s.seedNode(ctx, models.TipoLocal(g.Tipo), &g.Locales[i], nil); err != nil {
				return err
			}
		}
	}

	utils.Logger.Infof("Seeding completed successfully (%d locales).", s.count)
	return nil
}

type seeder struct {
	repos    SeedRepos
	metrajes map[string]int64
	count    int
}

func (s *seeder) seedNode(ctx context.Context, tipo models.TipoLocal, n *layout.Node, parentID *int64) error {
	if n.ZonaCodigo == "" {
		return nil
	}

	var tier *models.LineaBase
	if n.LineaBase != "" {
		tier = utils.Ptr(models.LineaBase(n.LineaBase))
	}
	zona := &models.Zona{
		CategoriaNombre: SeedCategoriaNombre,
		Codigo:          n.ZonaCodigo,
		LineaBase:       tier,
		TieneSubniveles: len(n.Subniveles) > 0,
	}
	if err := s.repos.Zonas.Create(ctx, zona); err != nil {
		if utils.IsUniqueViolation(err) {
			utils.Logger.Warnf("Zona %s already exists; skipping its subtree", n.ZonaCodigo)
			return nil
		}
		return fmt.Errorf("seed zona %s: %w", n.ZonaCodigo, err)
	}

	metrajeID, err := s.metrajeFor(ctx, n.Image)
	if err != nil {
		return err
	}

	s.count++
	local := &models.Local{
		ZonaID:       zona.ID,
		MetrajeID:    metrajeID,
		Estado:       seedEstado(s.count),
		PrecioBase:   decimal.NewFromInt(45000 + int64(s.count)*1500),
		Tipo:         tipo,
		SubnivelDeID: parentID,
	}
	if err := s.repos.Locales.Create(ctx, local); err != nil {
		return fmt.Errorf("seed local %s: %w", n.ZonaCodigo, err)
	}

	for i := range n.Subniveles {
		if err := s.seedNode(ctx, tipo, &n.Subniveles[i], &local.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) metrajeFor(ctx context.Context, image string) (int64, error) {
	fp, ok := seedFootprints[image]
	if !ok {
		fp = seedFootprints["../assets/tipos_locales/mediano.png"]
	}
	if id, ok := s.metrajes[fp.area]; ok {
		return id, nil
	}

	existing, err := s.repos.Metrajes.GetByArea(ctx, fp.area)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		existing = &models.Metraje{Area: fp.area, Perimetro: fp.perimetro}
		if image != "" {
			existing.Image = utils.Ptr(image)
		}
		if err := s.repos.Metrajes.Create(ctx, existing); err != nil {
			return 0, fmt.Errorf("seed metraje %s: %w", fp.area, err)
		}
	}
	s.metrajes[fp.area] = existing.ID
	return existing.ID, nil
}

func seedEstado(n int) models.EstadoLocal {
	switch {
	case n%5 == 0:
		return models.EstadoVendido
	case n%7 == 0:
		return models.EstadoReservado
	default:
		return models.EstadoDisponible
	}
}

func seedDefaultStaff(ctx context.Context, users repositories.UserRepository, password string) error {
	if existing, err := users.GetByUsername(ctx, DefaultStaffUsername); err != nil {
		return err
	} else if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	u := &models.User{
		Username:     DefaultStaffUsername,
		Email:        DefaultStaffEmail,
		PasswordHash: hash,
		Role:         models.RoleStaff,
	}
	if err := users.Create(ctx, u); err != nil && !utils.IsUniqueViolation(err) {
		return err
	}
	utils.Logger.Infof("Seeded default staff user %q", DefaultStaffUsername)
	return nil
}
