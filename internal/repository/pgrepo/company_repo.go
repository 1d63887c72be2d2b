package pgrepo

import (
	"context"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const companyColumns = `id, created_at, updated_at, name, slug, cnpj, email, phone, address, logo, pix_key,
	merchant_name, merchant_city`

type CompanyRepository struct {
	conn uow.DBTX
}

func NewCompanyRepository(conn uow.DBTX) *CompanyRepository {
	return &CompanyRepository{conn: conn}
}

// FindDefault возвращает первую созданную компанию.
func (c *CompanyRepository) FindDefault(ctx context.Context) (*domain.Company, error) {
	row := c.conn.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at LIMIT 1`)
	company, err := scanCompany(row)
	if err != nil {
		return nil, convertErr(err, "finding default company")
	}
	return company, nil
}

func (c *CompanyRepository) FindBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	row := c.conn.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE slug = $1`, slug)
	company, err := scanCompany(row)
	if err != nil {
		return nil, convertErr(err, "finding company by slug `%s`", slug)
	}
	return company, nil
}

// FindWithoutSlug возвращает компании, у которых slug еще не сохранен.
func (c *CompanyRepository) FindWithoutSlug(ctx context.Context) ([]domain.Company, error) {
	rows, err := c.conn.Query(ctx, `SELECT `+companyColumns+` FROM companies WHERE slug = '' ORDER BY created_at`)
	if err != nil {
		return nil, convertErr(err, "finding companies without slug")
	}
	companies, collectErr := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Company, error) {
		company, scanErr := scanCompany(r)
		if scanErr != nil {
			return domain.Company{}, scanErr
		}
		return *company, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "finding companies without slug")
	}
	return companies, nil
}

func (c *CompanyRepository) Create(ctx context.Context, args repoargs.SaveCompany) (*domain.Company, error) {
	row := c.conn.QueryRow(ctx,
		`INSERT INTO companies (name, slug, cnpj, email, phone, address, logo, pix_key, merchant_name, merchant_city)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+companyColumns,
		args.Name, args.Slug, args.CNPJ, args.Email, args.Phone, args.Address, args.Logo, args.PixKey,
		args.MerchantName, args.MerchantCity,
	)
	company, err := scanCompany(row)
	if err != nil {
		return nil, convertErr(err, "creating company `%s`", args.Name)
	}
	return company, nil
}

func (c *CompanyRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	args repoargs.SaveCompany,
) (*domain.Company, error) {
	row := c.conn.QueryRow(ctx,
		`UPDATE companies SET
			name = $2, slug = $3, cnpj = $4, email = $5, phone = $6, address = $7, logo = $8, pix_key = $9,
			merchant_name = $10, merchant_city = $11, updated_at = now()
		WHERE id = $1
		RETURNING `+companyColumns,
		id, args.Name, args.Slug, args.CNPJ, args.Email, args.Phone, args.Address, args.Logo, args.PixKey,
		args.MerchantName, args.MerchantCity,
	)
	company, err := scanCompany(row)
	if err != nil {
		return nil, convertErr(err, "updating company %s", id)
	}
	return company, nil
}

func (c *CompanyRepository) SetSlug(ctx context.Context, id uuid.UUID, slug string) error {
	tag, err := c.conn.Exec(ctx, `UPDATE companies SET slug = $2, updated_at = now() WHERE id = $1`, id, slug)
	if err != nil {
		return convertErr(err, "setting slug for company %s", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "setting slug for company %s", id)
	}
	return nil
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var company domain.Company
	if err := row.Scan(
		&company.ID,
		&company.CreatedAt,
		&company.UpdatedAt,
		&company.Name,
		&company.Slug,
		&company.CNPJ,
		&company.Email,
		&company.Phone,
		&company.Address,
		&company.Logo,
		&company.PixKey,
		&company.MerchantName,
		&company.MerchantCity,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &company, nil
}
