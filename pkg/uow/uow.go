package uow

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type RepositoryName string
type Repository any

// RepositoryFactory создает репозиторий поверх пула или транзакции.
type RepositoryFactory func(DBTX) Repository

// UnitOfWork реестр репозиториев и точка входа в транзакции. Регистрация выполняется при старте приложения,
// после этого реестр только читается.
type UnitOfWork struct {
	conn         Conn
	txOptions    pgx.TxOptions
	repositories map[RepositoryName]RepositoryFactory
}

func NewUnitOfWork(conn Conn) *UnitOfWork {
	return &UnitOfWork{
		conn:         conn,
		txOptions:    pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		repositories: make(map[RepositoryName]RepositoryFactory),
	}
}

// SetTxOptions задает параметры транзакций, открываемых в Do.
func (u *UnitOfWork) SetTxOptions(opts pgx.TxOptions) *UnitOfWork {
	u.txOptions = opts
	return u
}

// Register добавляет фабрику репозитория. Повторная регистрация имени возвращает
// ErrRepositoryAlreadyRegistered, пустое имя или nil фабрика ErrInvalidRegistration.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if name == "" || factory == nil {
		return ErrInvalidRegistration
	}
	if _, ok := u.repositories[name]; ok {
		return ErrRepositoryAlreadyRegistered
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет fn в транзакции. Фиксация только если fn вернула nil, иначе откат, и изменения,
// сделанные через репозитории tx, не применяются.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, u.txOptions)
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	if transErr := fn(ctx, NewTransaction(tx, u.repositories)); transErr != nil {
		return transErr
	}
	return tx.Commit(ctx) //nolint:wrapcheck
}

// GetRepository возвращает репозиторий, работающий вне транзакции.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	factory, ok := u.repositories[name]
	if !ok {
		return nil, notRegisteredErr(name)
	}
	return factory(u.conn), nil
}

// GetRepositoryAs GetRepository с приведением к T. Ошибки ErrRepositoryNotRegistered и ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	repo, err := u.GetRepository(name)
	if err != nil {
		var zero T
		return zero, err //nolint:wrapcheck
	}
	return castRepository[T](repo, name)
}
