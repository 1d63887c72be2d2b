package uow

import (
	"errors"
	"fmt"
)

var (
	ErrRepositoryNotRegistered     = errors.New("[uow] repository not registered")
	ErrRepositoryAlreadyRegistered = errors.New("[uow] repository already registered")
	ErrInvalidRepositoryType       = errors.New("[uow] invalid repository type")
	ErrInvalidRegistration         = errors.New("[uow] empty repository name or nil factory")
)

func notRegisteredErr(name RepositoryName) error {
	return fmt.Errorf("%w: %q", ErrRepositoryNotRegistered, name)
}

// castRepository приводит репозиторий к T, в ошибке указывает имя и фактический тип.
func castRepository[T any](repo Repository, name RepositoryName) (T, error) {
	res, ok := repo.(T)
	if !ok {
		return res, fmt.Errorf("%w: %q is %T, want %T", ErrInvalidRepositoryType, name, repo, res)
	}
	return res, nil
}
