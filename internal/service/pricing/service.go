package pricing

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/service/pricing/models"
)

// Service источник текущих цен каталога
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса цен
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Snapshot читает каталог и возвращает цены на момент вызова.
// Расчет смены всегда идет по текущим ценам, а не по ценам на момент бронирования.
func (s *Service) Snapshot(ctx context.Context) (domain.PriceSnapshot, error) {
	entries, err := s.catalogRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Snapshot: failed to read catalog: %v", err)
		return nil, fmt.Errorf("%w: Snapshot - repository error: %v", ErrInternal, err)
	}

	return domain.NewPriceSnapshot(entries), nil
}

// ListServices возвращает публичный каталог услуг
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	entries, err := s.catalogRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListServices: failed to read catalog: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services", len(entries))
	return models.FromDomainCatalog(entries), nil
}
