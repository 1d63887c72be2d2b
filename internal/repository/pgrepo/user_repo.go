package pgrepo

import (
	"context"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const userColumns = `id, created_at, updated_at, name, email, encrypted_password, role, hours_balance`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// CreateUser создает юзера в базе данных. В случае конфликта email возвращает ошибку domain.ErrDuplicateKey,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`INSERT INTO users (name, email, encrypted_password, role)
		VALUES ($1, lower($2), $3, $4)
		RETURNING `+userColumns,
		user.Name, user.Email, user.Password, user.Role,
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return dbUser, nil
}

// FindUserByEmail ищет юзера по email без учета регистра. Возвращает ошибку domain.ErrRecordNotFound если
// запись не найдена.
func (u *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return dbUser, nil
}

func (u *UserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %s", id)
	}
	return dbUser, nil
}

// IncrementHours увеличивает баланс часов юзера и возвращает обновленную запись.
func (u *UserRepository) IncrementHours(
	ctx context.Context,
	id uuid.UUID,
	hours decimal.Decimal,
) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`UPDATE users SET hours_balance = hours_balance + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, hours,
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "incrementing hours for user %s", id)
	}
	return dbUser, nil
}

// List возвращает юзеров по дате создания по убыванию.
func (u *UserRepository) List(ctx context.Context, page repoargs.Page) ([]domain.User, error) {
	limit, offset, pageErr := pageArgs(page)
	if pageErr != nil {
		return nil, convertErr(pageErr, "listing users")
	}
	rows, err := u.conn.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "listing users")
	}
	users, collectErr := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.User, error) {
		dbUser, scanErr := scanUser(r)
		if scanErr != nil {
			return domain.User{}, scanErr
		}
		return *dbUser, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing users")
	}
	return users, nil
}

func (u *UserRepository) CountByRole(ctx context.Context, role domain.RoleType) (int64, error) {
	var count int64
	if err := u.conn.QueryRow(ctx, `SELECT count(*) FROM users WHERE role = $1`, role).Scan(&count); err != nil {
		return 0, convertErr(err, "counting users with role %s", role)
	}
	return count, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Name,
		&user.Email,
		&user.EncryptedPassword,
		&user.Role,
		&user.HoursBalance,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
