package uow

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type UOWTestSuite struct {
	suite.Suite
}

func TestUOWSuite(t *testing.T) {
	suite.Run(t, new(UOWTestSuite))
}

type fakeRepo struct {
	conn DBTX
}

func (s *UOWTestSuite) TestRegister() {
	u := NewUnitOfWork(nil)
	factory := func(conn DBTX) Repository { return &fakeRepo{conn: conn} }

	s.Require().NoError(u.Register("repo", factory))
	s.ErrorIs(u.Register("repo", factory), ErrRepositoryAlreadyRegistered)

	repo, err := GetRepositoryAs[*fakeRepo](u, "repo")
	s.Require().NoError(err)
	s.NotNil(repo)

	_, notRegErr := GetRepositoryAs[*fakeRepo](u, "unknown")
	s.ErrorIs(notRegErr, ErrRepositoryNotRegistered)

	_, typeErr := GetRepositoryAs[string](u, "repo")
	s.ErrorIs(typeErr, ErrInvalidRepositoryType)
	s.Contains(typeErr.Error(), `"repo" is *uow.fakeRepo`)

	s.ErrorIs(u.Register("", factory), ErrInvalidRegistration)
	s.ErrorIs(u.Register("nil", nil), ErrInvalidRegistration)
}

func (s *UOWTestSuite) TestTransactionGet() {
	var calls int
	factories := map[RepositoryName]RepositoryFactory{
		"repo": func(conn DBTX) Repository {
			calls++
			return &fakeRepo{conn: conn}
		},
	}
	tx := NewTransaction(nil, factories)

	first, err := GetAs[*fakeRepo](tx, "repo")
	s.Require().NoError(err)
	second, err := GetAs[*fakeRepo](tx, "repo")
	s.Require().NoError(err)

	// внутри одной транзакции репозиторий создается один раз.
	s.Same(first, second)
	s.Equal(1, calls)

	_, notRegErr := GetAs[*fakeRepo](tx, "unknown")
	s.ErrorIs(notRegErr, ErrRepositoryNotRegistered)
	_, typeErr := GetAs[int](tx, "repo")
	s.ErrorIs(typeErr, ErrInvalidRepositoryType)
}
