package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/plazacomercial/locales-service/internal/catalog"
	"github.com/plazacomercial/locales-service/internal/layout"
	"github.com/plazacomercial/locales-service/internal/observability"
	"github.com/plazacomercial/locales-service/internal/utils"
)

// CatalogService assembles the grouped catalog view from the static
// layout and the live locales.
type CatalogService interface {
	GroupedLocales(ctx context.Context) ([]layout.Group, error)
}

type catalogService struct {
	table   *layout.Table
	store   catalog.UnitStore
	metrics *observability.Metrics
}

func NewCatalogService(
	table *layout.Table,
	store catalog.UnitStore,
	metrics *observability.Metrics,
) CatalogService {
	return &catalogService{table: table, store: store, metrics: metrics}
}

func (s *catalogService) GroupedLocales(ctx context.Context) ([]layout.Group, error) {
	start := time.Now()
	idx, err := catalog.BuildIndex(ctx, s.store, s.table)
	s.metrics.CatalogLookupDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.CatalogLookupErrors.Inc()
		return nil, utils.NewInternalError("Failed to load catalog", err)
	}

	groups, st := catalog.MergeWithStats(s.table.Groups(), idx)
	s.metrics.CatalogNodesTotal.WithLabelValues("matched").Add(float64(st.Matched))
	s.metrics.CatalogNodesTotal.WithLabelValues("missed").Add(float64(st.Missed))

	utils.Logger.WithFields(logrus.Fields{
		"matched": st.Matched,
		"missed":  st.Missed,
	}).Debug("grouped catalog assembled")
	return groups, nil
}
