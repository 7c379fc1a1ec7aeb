package books

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	id "bookswap/pkg/domain"
	"bookswap/pkg/platform/sentinel"
)

type RedisStoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *RedisStore
	ctx   context.Context
}

func (s *RedisStoreSuite) SetupTest() {
	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini
	s.store = NewRedisStore(goredis.NewClient(&goredis.Options{Addr: mini.Addr()}))
	s.ctx = context.Background()
}

func (s *RedisStoreSuite) TearDownTest() {
	s.mini.Close()
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) newBook(title string) *Book {
	return &Book{
		ID:          id.NewBookID(),
		UserID:      id.NewUserID(),
		Title:       title,
		Author:      "Author",
		Genre:       "Genre",
		Description: "Description",
		ImageURL:    "https://covers.example.com/x.jpg",
		CreatedAt:   time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (s *RedisStoreSuite) TestRoundTrip() {
	book := s.newBook("Round Trip")
	s.Require().NoError(s.store.Save(s.ctx, book))

	found, err := s.store.FindByID(s.ctx, book.ID)
	s.Require().NoError(err)
	s.Equal(book, found)
}

func (s *RedisStoreSuite) TestFindMissing() {
	_, err := s.store.FindByID(s.ctx, id.NewBookID())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisStoreSuite) TestDelete() {
	book := s.newBook("To Delete")
	s.Require().NoError(s.store.Save(s.ctx, book))
	s.Require().NoError(s.store.Delete(s.ctx, book.ID))

	_, err := s.store.FindByID(s.ctx, book.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	s.Require().ErrorIs(s.store.Delete(s.ctx, book.ID), sentinel.ErrNotFound)
}

func (s *RedisStoreSuite) TestList() {
	s.Require().NoError(s.store.Save(s.ctx, s.newBook("One")))
	s.Require().NoError(s.store.Save(s.ctx, s.newBook("Two")))

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)
}
