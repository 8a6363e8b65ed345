package catalog

import (
	"context"
	"fmt"

	"github.com/plazacomercial/locales-service/internal/layout"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/utils"
	"github.com/sirupsen/logrus"
)

// UnitStore is the read side the lookup depends on. Implementations must
// return every local whose zona code is in codes, with Zona and Metraje
// populated, in a stable order.
type UnitStore interface {
	FetchUnitsByZoneCodes(ctx context.Context, codes []string) ([]*models.Local, error)
}

// Index maps a zone code to the live record that overlays it.
type Index map[string]*models.Local

// CollectZoneCodes returns every non-empty zone code in the table, at any
// depth, deduplicated, in first-seen order.
func CollectZoneCodes(t *layout.Table) []string {
	seen := make(map[string]struct{})
	var codes []string
	t.Walk(func(n *layout.Node) {
		if n.ZonaCodigo == "" {
			return
		}
		if _, ok := seen[n.ZonaCodigo]; ok {
			return
		}
		seen[n.ZonaCodigo] = struct{}{}
		codes = append(codes, n.ZonaCodigo)
	})
	return codes
}

// BuildIndex fetches the live records for every code in the layout with a
// single store call. An empty layout never reaches the store.
func BuildIndex(ctx context.Context, store UnitStore, t *layout.Table) (Index, error) {
	codes := CollectZoneCodes(t)
	if len(codes) == 0 {
		return Index{}, nil
	}

	units, err := store.FetchUnitsByZoneCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch units: %w", err)
	}
	return IndexUnits(units), nil
}

// IndexUnits keys units by zone code. When two units share a code the
// later one wins.
func IndexUnits(units []*models.Local) Index {
	idx := make(Index, len(units))
	for _, u := range units {
		code := u.ZoneCode()
		if code == "" {
			continue
		}
		if prev, dup := idx[code]; dup {
			utils.Logger.WithFields(logrus.Fields{
				"zona_codigo": code,
				"kept_id":     u.ID,
				"dropped_id":  prev.ID,
			}).Warn("duplicate zone code in catalog; keeping the latest local")
		}
		idx[code] = u
	}
	return idx
}
