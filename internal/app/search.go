package app

import (
	"context"
	"fmt"
	"time"

	"staybook/internal/domain"
)

// SearchService validates criteria, resolves the location and
// delegates to the availability resolver. Results are cached per
// (location, dates, party size); staleness is bounded by the TTL
// rather than explicit invalidation, since search keys are unbounded.
type SearchService struct {
	locations domain.LocationRepository
	resolver  *AvailabilityResolver
	cache     domain.Cache
	cacheTTL  time.Duration
}

func NewSearchService(locs domain.LocationRepository, res *AvailabilityResolver, cache domain.Cache, ttl time.Duration) *SearchService {
	return &SearchService{locations: locs, resolver: res, cache: cache, cacheTTL: ttl}
}

// Search returns the hotels with at least one bookable room for the
// criteria. An empty slice is a valid answer (no match) and is
// distinct from a validation error.
func (s *SearchService) Search(ctx context.Context, c domain.SearchCriteria) ([]domain.HotelResult, error) {
	c.CheckIn = domain.Date(c.CheckIn)
	c.CheckOut = domain.Date(c.CheckOut)
	if err := ValidateSearch(c, domain.Date(time.Now())); err != nil {
		return nil, err
	}

	loc, err := s.resolveLocation(ctx, c)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("search:%d:%s:%s:%d",
		loc.ID, c.CheckIn.Format("2006-01-02"), c.CheckOut.Format("2006-01-02"), c.NumberOfGuests)
	if s.cache != nil {
		var cached []domain.HotelResult
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	results, err := s.resolver.AvailableRooms(ctx, loc, c.CheckIn, c.CheckOut, c.NumberOfGuests)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, results, s.cacheTTL)
	}
	return results, nil
}

func (s *SearchService) resolveLocation(ctx context.Context, c domain.SearchCriteria) (domain.Location, error) {
	if c.LocationID != 0 {
		return s.locations.GetByID(ctx, c.LocationID)
	}
	if c.City == "" {
		return domain.Location{}, domain.E(domain.KindInvalid, domain.CodeLocationNotFound,
			"either locationId or city is required")
	}
	return s.locations.GetByCityName(ctx, c.City)
}
