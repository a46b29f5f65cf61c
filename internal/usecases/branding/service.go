package branding

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-projection-api/infrastructure/repository"
	"github.com/vfg2006/brand-projection-api/internal/domain"
	"github.com/vfg2006/brand-projection-api/internal/observability"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
	"github.com/vfg2006/brand-projection-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type BrandService interface {
	ListBrands(ctx context.Context) ([]*domain.Brand, error)
	GetBrand(ctx context.Context, brandID string) (*domain.Brand, error)
	CreateBrand(ctx context.Context, raw map[string]any) (*domain.Brand, error)
	UpdateBrand(ctx context.Context, brandID string, raw map[string]any) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, brandID string) error
	ResetBrands(ctx context.Context) ([]*domain.Brand, error)
}

type Service struct {
	brandRepo    repository.BrandRepository
	settingsRepo repository.SettingsRepository
}

func NewService(brandRepo repository.BrandRepository, settingsRepo repository.SettingsRepository) BrandService {
	return &Service{
		brandRepo:    brandRepo,
		settingsRepo: settingsRepo,
	}
}

// ListBrands retorna a carteira na ordem de inserção. No primeiro acesso a um
// banco vazio a carteira padrão é gravada.
func (s *Service) ListBrands(ctx context.Context) ([]*domain.Brand, error) {
	brands, err := s.brandRepo.ListBrands(ctx)
	if err != nil {
		return nil, NewBrandError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if len(brands) == 0 {
		_, seeded, err := s.settingsRepo.GetSetting(ctx, repository.SettingBrandsSeeded)
		if err != nil {
			return nil, NewBrandError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		if !seeded {
			logrus.Info("Carteira vazia, gravando marcas padrão")
			return s.ResetBrands(ctx)
		}
	}

	observability.BrandsTotal.Set(float64(len(brands)))

	return brands, nil
}

func (s *Service) GetBrand(ctx context.Context, brandID string) (*domain.Brand, error) {
	brand, err := s.brandRepo.GetBrandByID(ctx, brandID)
	if err != nil {
		return nil, NewBrandErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, brandID, err.Error())
	}

	if brand == nil {
		return nil, NewBrandErrorWithID(ErrBrandNotFound, apiErrors.ErrBrandNotFound, brandID, "Marca não encontrada")
	}

	return brand, nil
}

func (s *Service) CreateBrand(ctx context.Context, raw map[string]any) (*domain.Brand, error) {
	input, err := NormalizeBrandInput(raw)
	if err != nil {
		observability.BrandMutationsTotal.WithLabelValues("create", "invalid").Inc()
		return nil, err
	}

	brand, err := ValidateBrandCreate(input)
	if err != nil {
		observability.BrandMutationsTotal.WithLabelValues("create", "invalid").Inc()
		return nil, err
	}

	brand.ID, err = utils.GenerateID()
	if err != nil {
		return nil, NewBrandError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	brand, err = s.brandRepo.CreateBrand(ctx, brand)
	if err != nil {
		observability.BrandMutationsTotal.WithLabelValues("create", "error").Inc()
		return nil, NewBrandError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	// Uma carteira criada pelo usuário não deve receber as marcas padrão depois
	if err := s.markSeeded(ctx); err != nil {
		logrus.WithError(err).Warn("Erro ao registrar carteira inicializada")
	}

	observability.BrandMutationsTotal.WithLabelValues("create", "ok").Inc()
	s.refreshBrandsGauge(ctx)
	logrus.WithField("brand_id", brand.ID).Infof("Marca criada: %s", brand.Name)

	return brand, nil
}

// UpdateBrand aplica uma edição parcial: campos ausentes mantêm o valor atual.
func (s *Service) UpdateBrand(ctx context.Context, brandID string, raw map[string]any) (*domain.Brand, error) {
	input, err := NormalizeBrandInput(raw)
	if err != nil {
		observability.BrandMutationsTotal.WithLabelValues("update", "invalid").Inc()
		return nil, err
	}

	brand, err := s.GetBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	if err := ValidateBrandUpdate(brand, input); err != nil {
		observability.BrandMutationsTotal.WithLabelValues("update", "invalid").Inc()
		return nil, err
	}

	brand, err = s.brandRepo.UpdateBrand(ctx, brand)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewBrandErrorWithID(ErrBrandNotFound, apiErrors.ErrBrandNotFound, brandID, "Marca não encontrada")
		}
		observability.BrandMutationsTotal.WithLabelValues("update", "error").Inc()
		return nil, NewBrandErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, brandID, err.Error())
	}

	observability.BrandMutationsTotal.WithLabelValues("update", "ok").Inc()

	return brand, nil
}

func (s *Service) DeleteBrand(ctx context.Context, brandID string) error {
	err := s.brandRepo.DeleteBrand(ctx, brandID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewBrandErrorWithID(ErrBrandNotFound, apiErrors.ErrBrandNotFound, brandID, "Marca não encontrada")
		}
		observability.BrandMutationsTotal.WithLabelValues("delete", "error").Inc()
		return NewBrandErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, brandID, err.Error())
	}

	observability.BrandMutationsTotal.WithLabelValues("delete", "ok").Inc()
	s.refreshBrandsGauge(ctx)
	logrus.WithField("brand_id", brandID).Info("Marca removida")

	return nil
}

// ResetBrands substitui a carteira inteira pelas marcas padrão.
func (s *Service) ResetBrands(ctx context.Context) ([]*domain.Brand, error) {
	defaults := domain.DefaultBrands()
	for _, brand := range defaults {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewBrandError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
		}
		brand.ID = id
	}

	brands, err := s.brandRepo.ReplaceBrands(ctx, defaults)
	if err != nil {
		observability.BrandMutationsTotal.WithLabelValues("reset", "error").Inc()
		return nil, NewBrandError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if err := s.markSeeded(ctx); err != nil {
		return nil, NewBrandError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	observability.BrandMutationsTotal.WithLabelValues("reset", "ok").Inc()
	observability.BrandsTotal.Set(float64(len(brands)))
	logrus.Infof("Carteira redefinida com %d marcas padrão", len(brands))

	return brands, nil
}

// refreshBrandsGauge atualiza o gauge de marcas após uma alteração. Falha na
// contagem não desfaz a alteração.
func (s *Service) refreshBrandsGauge(ctx context.Context) {
	count, err := s.brandRepo.CountBrands(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao contar marcas")
		return
	}
	observability.BrandsTotal.Set(float64(count))
}

func (s *Service) markSeeded(ctx context.Context) error {
	return s.settingsRepo.SetSetting(ctx, repository.SettingBrandsSeeded, strconv.FormatBool(true))
}
