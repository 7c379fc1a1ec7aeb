package rankings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"bookswap/internal/books"
	"bookswap/internal/swaps"
	"bookswap/internal/users"
	id "bookswap/pkg/domain"
	dErrors "bookswap/pkg/domain-errors"
	"bookswap/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	userStore *users.InMemoryStore
	bookStore *books.InMemoryStore
	swapStore *swaps.InMemoryStore
	service   *Service
	now       time.Time
	ctx       context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.userStore = users.NewInMemoryStore()
	s.bookStore = books.NewInMemoryStore()
	s.swapStore = swaps.NewInMemoryStore()
	s.service = NewService(s.userStore, s.bookStore, s.swapStore)
	s.now = time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) addUser(name string) id.UserID {
	user := &users.User{
		ID:        id.NewUserID(),
		Name:      name,
		Email:     name + "@example.com",
		CreatedAt: s.now,
	}
	s.Require().NoError(s.userStore.Save(s.ctx, user))
	return user.ID
}

func (s *ServiceSuite) addBook(owner id.UserID, title string, createdAt time.Time) id.BookID {
	book := &books.Book{
		ID:        id.NewBookID(),
		UserID:    owner,
		Title:     title,
		Author:    "someone",
		Genre:     "fiction",
		CreatedAt: createdAt,
	}
	s.Require().NoError(s.bookStore.Save(s.ctx, book))
	return book.ID
}

func (s *ServiceSuite) addSwap(owner, requester id.UserID, status swaps.Status, createdAt time.Time) {
	request := &swaps.SwapRequest{
		ID:          id.NewSwapRequestID(),
		OwnerID:     owner,
		RequesterID: requester,
		BookID:      id.NewBookID(),
		Status:      status,
		CreatedAt:   createdAt,
	}
	s.Require().NoError(s.swapStore.Save(s.ctx, request))
}

func (s *ServiceSuite) TestEmptyMonthIsNotFound() {
	_, err := s.service.TopSwappers(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	// A completed swap from a previous month does not count.
	alice := s.addUser("alice")
	bob := s.addUser("bob")
	s.addSwap(alice, bob, swaps.StatusCompleted, s.now.AddDate(0, -1, 0))

	_, err = s.service.FeaturedSwappers(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestOrdersByCompletedSwaps() {
	alice := s.addUser("alice")
	bob := s.addUser("bob")
	carol := s.addUser("carol")
	dave := s.addUser("dave")

	// Alice completes three swaps this month, carol one. Pending and
	// rejected requests never count.
	s.addSwap(alice, bob, swaps.StatusCompleted, s.now.Add(-72*time.Hour))
	s.addSwap(alice, bob, swaps.StatusCompleted, s.now.Add(-48*time.Hour))
	s.addSwap(bob, alice, swaps.StatusCompleted, s.now.Add(-24*time.Hour))
	s.addSwap(carol, dave, swaps.StatusCompleted, s.now.Add(-12*time.Hour))
	s.addSwap(carol, dave, swaps.StatusPending, s.now.Add(-6*time.Hour))
	s.addSwap(dave, carol, swaps.StatusRejected, s.now.Add(-3*time.Hour))

	rankings, err := s.service.FeaturedSwappers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rankings, 4)

	s.Equal(alice, rankings[0].User.ID)
	s.Equal(3, rankings[0].CompletedSwaps)
	s.Equal(bob, rankings[1].User.ID)
	s.Equal(3, rankings[1].CompletedSwaps)
	s.Equal(1, rankings[2].CompletedSwaps)
	s.Equal(1, rankings[3].CompletedSwaps)
}

func (s *ServiceSuite) TestTieBreakIsFirstAppearance() {
	alice := s.addUser("alice")
	bob := s.addUser("bob")
	carol := s.addUser("carol")
	dave := s.addUser("dave")

	// One completed swap each; the earlier swap's participants rank first.
	s.addSwap(carol, dave, swaps.StatusCompleted, s.now.Add(-2*time.Hour))
	s.addSwap(alice, bob, swaps.StatusCompleted, s.now.Add(-1*time.Hour))

	rankings, err := s.service.TopSwappers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rankings, 4)
	s.Equal(carol, rankings[0].User.ID)
	s.Equal(dave, rankings[1].User.ID)
	s.Equal(alice, rankings[2].User.ID)
	s.Equal(bob, rankings[3].User.ID)
}

func (s *ServiceSuite) TestCapsAtFive() {
	anchor := s.addUser("anchor")
	others := make([]id.UserID, 6)
	for i := range others {
		others[i] = s.addUser("user")
		count := len(others) - i
		for j := 0; j < count; j++ {
			s.addSwap(anchor, others[i], swaps.StatusCompleted, s.now.Add(-time.Duration(i*10+j)*time.Minute))
		}
	}

	rankings, err := s.service.TopSwappers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rankings, 5)
	s.Equal(anchor, rankings[0].User.ID)
}

func (s *ServiceSuite) TestAttachesLatestBook() {
	alice := s.addUser("alice")
	bob := s.addUser("bob")
	s.addBook(alice, "Old Listing", s.now.Add(-48*time.Hour))
	newest := s.addBook(alice, "New Listing", s.now.Add(-time.Hour))
	s.addSwap(alice, bob, swaps.StatusCompleted, s.now.Add(-time.Minute))

	rankings, err := s.service.TopSwappers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rankings, 2)

	s.Require().NotNil(rankings[0].LatestBook)
	s.Equal(newest, rankings[0].LatestBook.ID)
	s.Equal("New Listing", rankings[0].LatestBook.Title)
	s.Nil(rankings[1].LatestBook)
}
