package uow

import (
	"github.com/jackc/pgx/v5"
)

// Transaction выдает репозитории, привязанные к одной pgx транзакции. Экземпляры кешируются, повторный Get
// с тем же именем возвращает тот же репозиторий.
type Transaction struct {
	factories map[RepositoryName]RepositoryFactory
	instances map[RepositoryName]Repository
	tx        pgx.Tx
}

func NewTransaction(tx pgx.Tx, factories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		factories: factories,
		instances: make(map[RepositoryName]Repository, len(factories)),
		tx:        tx,
	}
}

// Get возвращает репозиторий или ошибку ErrRepositoryNotRegistered.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if repo, ok := t.instances[name]; ok {
		return repo, nil
	}
	factory, ok := t.factories[name]
	if !ok {
		return nil, notRegisteredErr(name)
	}
	repo := factory(t.tx)
	t.instances[name] = repo
	return repo, nil
}

// GetAs репозиторий транзакции, приведенный к T.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	repo, err := t.Get(name)
	if err != nil {
		var zero T
		return zero, err //nolint:wrapcheck
	}
	return castRepository[T](repo, name)
}
