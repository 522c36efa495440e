package catalog

import (
	"context"

	dom "example.com/shop-checkout/internal/domain/product"
)

// Mirror receives write-through copies of catalog mutations, typically
// backed by MySQL. The in-memory repository stays authoritative; a nil
// mirror disables mirroring.
type Mirror interface {
	Create(ctx context.Context, p *dom.Product) error
	SaveStock(ctx context.Context, id int64, stock int64) error
	SaveDiscount(ctx context.Context, id int64, pct float64) error
	SaveActive(ctx context.Context, id int64, active bool) error
}

type Service struct {
	repo   dom.Repository
	mirror Mirror
}

func NewService(repo dom.Repository, mirror Mirror) *Service {
	return &Service{repo: repo, mirror: mirror}
}

func (s *Service) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	if s.mirror != nil {
		if err := s.mirror.Create(ctx, created); err != nil {
			return nil, err
		}
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Product, error) {
	return s.repo.List(ctx, filter)
}

// Restock adds qty units to a product's stock.
func (s *Service) Restock(ctx context.Context, id int64, qty int64) (*dom.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Restock(qty)
	if s.mirror != nil {
		if err := s.mirror.SaveStock(ctx, p.ID, p.Stock); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *Service) SetDiscount(ctx context.Context, id int64, pct float64) (*dom.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.SetDiscount(pct)
	if s.mirror != nil {
		if err := s.mirror.SaveDiscount(ctx, p.ID, pct); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *Service) SetActive(ctx context.Context, id int64, active bool) (*dom.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.SetActive(active)
	if s.mirror != nil {
		if err := s.mirror.SaveActive(ctx, p.ID, active); err != nil {
			return nil, err
		}
	}
	return p, nil
}
