package directory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"mechbook/internal/domain"
	"mechbook/internal/fixtures"
	"mechbook/internal/repository"
)

const maxServicesPerSummary = 5

// Service serves the public, unauthenticated shop directory. With demoMode
// set it answers from the bundled fixtures instead of the database.
type Service struct {
	shops      ShopRepository
	services   ServiceRepository
	categories CategoryRepository
	demoMode   bool
}

func NewService(shops ShopRepository, services ServiceRepository, categories CategoryRepository, demoMode bool) *Service {
	return &Service{shops: shops, services: services, categories: categories, demoMode: demoMode}
}

// SearchShops returns approved, active shops matching the filters, each with
// its cheapest active services and total service count.
func (s *Service) SearchShops(ctx context.Context, q SearchQuery) ([]ShopSummary, error) {
	if s.demoMode {
		return searchFixtures(q), nil
	}

	shops, err := s.shops.Search(ctx, repository.ShopFilters{
		Query:       q.Query,
		City:        q.City,
		VehicleType: domain.VehicleType(q.VehicleType),
	})
	if err != nil {
		return nil, err
	}
	if len(shops) == 0 {
		return []ShopSummary{}, nil
	}

	ids := make([]int64, len(shops))
	for i, sh := range shops {
		ids[i] = sh.ID
	}

	// one query for every shop on the page; rows arrive ordered by price
	svcs, err := s.services.ActiveByShopIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byShop := make(map[int64][]domain.Service, len(shops))
	for _, svc := range svcs {
		byShop[svc.ShopID] = append(byShop[svc.ShopID], svc)
	}

	summaries := make([]ShopSummary, 0, len(shops))
	for _, sh := range shops {
		summaries = append(summaries, summarize(sh, byShop[sh.ID]))
	}
	return summaries, nil
}

// GetShop returns the full public profile of one approved, active shop.
func (s *Service) GetShop(ctx context.Context, id int64) (*ShopDetail, error) {
	if s.demoMode {
		for _, sh := range fixtures.DemoShops() {
			if sh.ID == id {
				svcs := sh.Services
				sh.Services = nil
				return &ShopDetail{Shop: sh, Services: svcs}, nil
			}
		}
		return nil, ErrShopNotFound
	}

	shop, err := s.shops.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	if !shop.Visible() {
		return nil, ErrShopNotFound
	}

	svcs, err := s.services.ListActiveByShop(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ShopDetail{Shop: *shop, Services: svcs}, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListActive(ctx)
}

func summarize(sh domain.Shop, svcs []domain.Service) ShopSummary {
	sort.SliceStable(svcs, func(i, j int) bool { return svcs[i].Price < svcs[j].Price })

	top := make([]ServiceSummary, 0, maxServicesPerSummary)
	for _, svc := range svcs {
		if len(top) == maxServicesPerSummary {
			break
		}
		top = append(top, ServiceSummary{ID: svc.ID, Name: svc.Name, Price: svc.Price})
	}

	return ShopSummary{
		ID:           sh.ID,
		Name:         sh.Name,
		Description:  sh.Description,
		Address:      sh.Address,
		City:         sh.City,
		State:        sh.State,
		Pincode:      sh.Pincode,
		Phone:        sh.Phone,
		VehicleTypes: sh.VehicleTypes,
		OpenTime:     sh.OpenTime,
		CloseTime:    sh.CloseTime,
		WorkingDays:  sh.WorkingDays,
		Services:     top,
		ServiceCount: len(svcs),
	}
}

func searchFixtures(q SearchQuery) []ShopSummary {
	query := strings.ToLower(q.Query)
	city := strings.ToLower(q.City)

	out := []ShopSummary{}
	for _, sh := range fixtures.DemoShops() {
		if query != "" && !fixtureMatches(sh, query) {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(sh.City), city) {
			continue
		}
		if q.VehicleType != "" && !sh.ServesVehicle(domain.VehicleType(q.VehicleType)) {
			continue
		}
		out = append(out, summarize(sh, sh.Services))
	}
	return out
}

func fixtureMatches(sh domain.Shop, query string) bool {
	if strings.Contains(strings.ToLower(sh.Name), query) ||
		strings.Contains(strings.ToLower(sh.Description), query) {
		return true
	}
	for _, svc := range sh.Services {
		if strings.Contains(strings.ToLower(svc.Name), query) {
			return true
		}
	}
	return false
}
