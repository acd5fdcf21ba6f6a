package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
)

// ServiceCatalog drives the service package screens and serves the cached
// reference list that customer dialogs load when they open.
type ServiceCatalog struct {
	client   ports.PDAMClient
	cache    ports.ReferenceCache
	ttl      time.Duration
	observer ports.Observer
	logger   zerolog.Logger
}

var _ ports.ServiceCatalog = (*ServiceCatalog)(nil)

// NewServiceCatalog returns a catalog. A nil cache or non-positive ttl
// disables reference caching; a nil observer discards events.
func NewServiceCatalog(client ports.PDAMClient, cache ports.ReferenceCache, ttl time.Duration, observer ports.Observer, logger zerolog.Logger) *ServiceCatalog {
	if observer == nil {
		observer = ports.NopObserver{}
	}
	return &ServiceCatalog{client: client, cache: cache, ttl: ttl, observer: observer, logger: logger}
}

// List returns the packages in server order, or an empty list if the fetch
// fails.
func (s *ServiceCatalog) List(ctx context.Context, creds ports.Credentials) []domain.Service {
	services, err := s.client.ListServices(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Msg("service list fetch failed, rendering empty list")
		s.observer.EmptyListFallback("service")
		return []domain.Service{}
	}
	if services == nil {
		services = []domain.Service{}
	}
	return services
}

// Reference returns the package list for dialog selects. Unlike List it
// reports fetch failures so the dialog can show a notice.
func (s *ServiceCatalog) Reference(ctx context.Context, creds ports.Credentials) ([]domain.Service, error) {
	tenant := tenantKey(creds)

	if s.cachingEnabled() {
		payload, ok, err := s.cache.Get(ctx, ports.ReferenceServices, tenant)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Msg("reference cache read failed")
		case ok:
			var cached []domain.Service
			if err := json.Unmarshal(payload, &cached); err == nil {
				s.observer.ReferenceLookup(ports.ReferenceServices, true)
				return cached, nil
			}
		}
		s.observer.ReferenceLookup(ports.ReferenceServices, false)
	}

	services, err := s.client.ListServices(ctx, creds)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []domain.Service{}
	}

	if s.cachingEnabled() {
		if payload, err := json.Marshal(services); err == nil {
			if err := s.cache.Set(ctx, ports.ReferenceServices, tenant, payload, s.ttl); err != nil {
				s.logger.Warn().Err(err).Msg("reference cache write failed")
			}
		}
	}
	return services, nil
}

func (s *ServiceCatalog) Create(ctx context.Context, creds ports.Credentials, in ports.ServiceInput) (string, error) {
	msg, err := s.client.CreateService(ctx, creds, in)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("service", in.Name).Msg("service created")
	return msg, nil
}

func (s *ServiceCatalog) Update(ctx context.Context, creds ports.Credentials, id int64, in ports.ServiceInput) (string, error) {
	msg, err := s.client.UpdateService(ctx, creds, id, in)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	s.logger.Info().Int64("service_id", id).Msg("service updated")
	return msg, nil
}

func (s *ServiceCatalog) Delete(ctx context.Context, creds ports.Credentials, id int64) (string, error) {
	msg, err := s.client.DeleteService(ctx, creds, id)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	s.logger.Info().Int64("service_id", id).Msg("service deleted")
	return msg, nil
}

func (s *ServiceCatalog) cachingEnabled() bool {
	return s.cache != nil && s.ttl > 0
}

func (s *ServiceCatalog) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ports.ReferenceServices); err != nil {
		s.logger.Warn().Err(err).Msg("reference cache invalidation failed")
	}
}

// tenantKey scopes cached lists to the bearer token without storing it.
func tenantKey(creds ports.Credentials) string {
	if creds.Token == "" {
		return "anonymous"
	}
	sum := sha256.Sum256([]byte(creds.Token))
	return hex.EncodeToString(sum[:16])
}
