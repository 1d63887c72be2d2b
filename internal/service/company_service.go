package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
)

// DefaultPixKey ключ PIX, используемый когда ни у одной компании ключ не настроен.
const DefaultPixKey = "contato@cit.com"

type CompanyService struct {
	uow         uow.UOW
	companyRepo CompanyRepository
}

func NewCompanyService(u uow.UOW) (*CompanyService, error) {
	companyRepo, err := uow.GetRepositoryAs[CompanyRepository](u, uow.RepositoryName(repoargs.CompanyRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CompanyService{
		uow:         u,
		companyRepo: companyRepo,
	}, nil
}

// Get возвращает конфигурацию компании (первая созданная компания).
func (s *CompanyService) Get(ctx context.Context) (*domain.Company, error) {
	company, err := s.companyRepo.FindDefault(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return company, nil
}

type SaveCompanyArgs struct {
	Name    string
	Slug    string
	CNPJ    string
	Email   string
	Phone   string
	Address string
	Logo    *string
}

// Save создает или обновляет данные компании. Пустой slug генерируется из названия.
func (s *CompanyService) Save(ctx context.Context, args SaveCompanyArgs) (*domain.Company, error) {
	return s.save(ctx, func(dst *repoargs.SaveCompany) {
		dst.Name = args.Name
		dst.Slug = args.Slug
		dst.CNPJ = args.CNPJ
		dst.Email = args.Email
		dst.Phone = args.Phone
		dst.Address = args.Address
		dst.Logo = args.Logo
	})
}

type SaveFinancialArgs struct {
	PixKey       string
	MerchantName string
	MerchantCity string
}

// SaveFinancial обновляет финансовые настройки (ключ PIX и данные получателя).
func (s *CompanyService) SaveFinancial(ctx context.Context, args SaveFinancialArgs) (*domain.Company, error) {
	return s.save(ctx, func(dst *repoargs.SaveCompany) {
		dst.PixKey = args.PixKey
		dst.MerchantName = args.MerchantName
		dst.MerchantCity = args.MerchantCity
	})
}

func (s *CompanyService) save(ctx context.Context, apply func(dst *repoargs.SaveCompany)) (*domain.Company, error) {
	var company *domain.Company
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[CompanyRepository](tx, uow.RepositoryName(repoargs.CompanyRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, findErr := repo.FindDefault(c)
		if findErr != nil && !errors.Is(findErr, domain.ErrRecordNotFound) {
			return findErr //nolint:wrapcheck
		}

		var args repoargs.SaveCompany
		if current != nil {
			args = companyArgs(current)
		}
		apply(&args)
		if args.Slug == "" {
			args.Slug = GenerateSlug(args.Name)
		}

		var saveErr error
		if current == nil {
			company, saveErr = repo.Create(c, args)
		} else {
			company, saveErr = repo.Update(c, current.ID, args)
		}
		return saveErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("saving company: %w", txErr)
	}
	return company, nil
}

// FindBySlug ищет компанию витрины. Если компания со slug не найдена, проверяются компании без сохраненного
// slug: совпавшей по сгенерированному из названия slug компании он сохраняется.
func (s *CompanyService) FindBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	company, err := s.companyRepo.FindBySlug(ctx, slug)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err //nolint:wrapcheck
	}

	candidates, candidatesErr := s.companyRepo.FindWithoutSlug(ctx)
	if candidatesErr != nil {
		return nil, candidatesErr //nolint:wrapcheck
	}
	for i := range candidates {
		candidate := &candidates[i]
		if GenerateSlug(candidate.Name) != slug {
			continue
		}
		if setErr := s.companyRepo.SetSlug(ctx, candidate.ID, slug); setErr != nil {
			return nil, setErr //nolint:wrapcheck
		}
		candidate.Slug = slug
		return candidate, nil
	}
	return nil, fmt.Errorf("company `%s`: %w", slug, domain.ErrRecordNotFound)
}

// ForOrder возвращает компанию, к которой привязывается заказ: по slug, иначе компанию по умолчанию.
// Если компаний нет, возвращает nil без ошибки.
func (s *CompanyService) ForOrder(ctx context.Context, slug *string) (*domain.Company, error) {
	if slug != nil && *slug != "" {
		company, err := s.FindBySlug(ctx, *slug)
		if err == nil {
			return company, nil
		}
		if !errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err
		}
	}
	company, err := s.companyRepo.FindDefault(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil
		}
		return nil, err //nolint:wrapcheck
	}
	return company, nil
}

// PixKey возвращает ключ PIX для заказа: ключ компании заказа, затем компании по умолчанию, затем DefaultPixKey.
func (s *CompanyService) PixKey(ctx context.Context, order *domain.Order) (string, *domain.Company) {
	company, err := s.ForOrder(ctx, order.CompanySlug)
	if err == nil && company != nil && company.PixKey != "" {
		return company.PixKey, company
	}
	if company != nil && order.CompanySlug != nil {
		if def, defErr := s.companyRepo.FindDefault(ctx); defErr == nil && def.PixKey != "" {
			return def.PixKey, def
		}
	}
	return DefaultPixKey, company
}

func companyArgs(c *domain.Company) repoargs.SaveCompany {
	return repoargs.SaveCompany{
		Name:         c.Name,
		Slug:         c.Slug,
		CNPJ:         c.CNPJ,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		Logo:         c.Logo,
		PixKey:       c.PixKey,
		MerchantName: c.MerchantName,
		MerchantCity: c.MerchantCity,
	}
}
