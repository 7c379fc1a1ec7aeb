package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "bookswap/pkg/domain"
	"bookswap/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.ctx = context.Background()
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) newUser(email string) *User {
	return &User{
		ID:          id.UserID(uuid.New()),
		Owner:       "subject-" + email,
		Name:        "Jane Doe",
		Email:       email,
		PhoneNumber: "0712345678",
		CreatedAt:   time.Now(),
	}
}

func (s *InMemoryStoreSuite) TestSaveAndFind() {
	s.Run("finds saved user by ID", func() {
		user := s.newUser("jane@example.com")
		s.Require().NoError(s.store.Save(s.ctx, user))

		found, err := s.store.FindByID(s.ctx, user.ID)
		s.Require().NoError(err)
		s.Equal(user, found)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.FindByID(s.ctx, id.UserID(uuid.New()))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("save is an upsert", func() {
		user := s.newUser("upsert@example.com")
		s.Require().NoError(s.store.Save(s.ctx, user))

		user.Name = "Renamed"
		s.Require().NoError(s.store.Save(s.ctx, user))

		found, err := s.store.FindByID(s.ctx, user.ID)
		s.Require().NoError(err)
		s.Equal("Renamed", found.Name)
	})
}

func (s *InMemoryStoreSuite) TestReadsReturnCopies() {
	user := s.newUser("copy@example.com")
	s.Require().NoError(s.store.Save(s.ctx, user))

	found, err := s.store.FindByID(s.ctx, user.ID)
	s.Require().NoError(err)
	found.Name = "Mutated"

	again, err := s.store.FindByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("Jane Doe", again.Name)
}

func (s *InMemoryStoreSuite) TestDelete() {
	s.Run("removes an existing user", func() {
		user := s.newUser("delete@example.com")
		s.Require().NoError(s.store.Save(s.ctx, user))
		s.Require().NoError(s.store.Delete(s.ctx, user.ID))

		_, err := s.store.FindByID(s.ctx, user.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returns ErrNotFound for absent user", func() {
		err := s.store.Delete(s.ctx, id.UserID(uuid.New()))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestList() {
	s.Require().NoError(s.store.Save(s.ctx, s.newUser("a@example.com")))
	s.Require().NoError(s.store.Save(s.ctx, s.newUser("b@example.com")))

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)
}
