package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	id "bookswap/pkg/domain"
	dErrors "bookswap/pkg/domain-errors"
)

type stubUsers struct{ known map[id.UserID]bool }

func (s *stubUsers) Exists(_ context.Context, userID id.UserID) (bool, error) {
	return s.known[userID], nil
}

type stubSwaps struct{ known map[id.SwapRequestID]bool }

func (s *stubSwaps) Exists(_ context.Context, requestID id.SwapRequestID) (bool, error) {
	return s.known[requestID], nil
}

type ServiceSuite struct {
	suite.Suite
	store   *InMemoryStore
	service *Service
	author  id.UserID
	swap    id.SwapRequestID
	ctx     context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.author = id.NewUserID()
	s.swap = id.NewSwapRequestID()
	users := &stubUsers{known: map[id.UserID]bool{s.author: true}}
	swaps := &stubSwaps{known: map[id.SwapRequestID]bool{s.swap: true}}
	s.service = NewService(s.store, users, swaps)
	s.ctx = context.Background()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) validParams() CreateParams {
	return CreateParams{
		UserID:        s.author,
		SwapRequestID: s.swap,
		Rating:        4,
		Comment:       "smooth swap, book arrived in great shape",
	}
}

func (s *ServiceSuite) TestCreate() {
	s.Run("stamps identity and timestamp", func() {
		fb, err := s.service.Create(s.ctx, s.validParams())
		s.Require().NoError(err)
		s.False(fb.ID.IsNil())
		s.False(fb.CreatedAt.IsZero())
		s.Equal(4, fb.Rating)

		found, err := s.service.GetByID(s.ctx, fb.ID)
		s.Require().NoError(err)
		s.Equal(fb, found)
	})

	s.Run("rejects invalid payloads", func() {
		params := s.validParams()
		params.Rating = 0
		_, err := s.service.Create(s.ctx, params)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		params = s.validParams()
		params.Comment = "  "
		_, err = s.service.Create(s.ctx, params)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		params = s.validParams()
		params.UserID = id.UserID{}
		_, err = s.service.Create(s.ctx, params)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects unknown references", func() {
		params := s.validParams()
		params.UserID = id.NewUserID()
		_, err := s.service.Create(s.ctx, params)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

		params = s.validParams()
		params.SwapRequestID = id.NewSwapRequestID()
		_, err = s.service.Create(s.ctx, params)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestUpdate() {
	fb, err := s.service.Create(s.ctx, s.validParams())
	s.Require().NoError(err)

	s.Run("applies partial changes", func() {
		rating := 5
		updated, err := s.service.Update(s.ctx, UpdateParams{ID: fb.ID, Rating: &rating})
		s.Require().NoError(err)
		s.Equal(5, updated.Rating)
		s.Equal(fb.Comment, updated.Comment)

		comment := "would swap again"
		updated, err = s.service.Update(s.ctx, UpdateParams{ID: fb.ID, Comment: &comment})
		s.Require().NoError(err)
		s.Equal(5, updated.Rating)
		s.Equal(comment, updated.Comment)
	})

	s.Run("rejects invalid changes", func() {
		rating := -1
		_, err := s.service.Update(s.ctx, UpdateParams{ID: fb.ID, Rating: &rating})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		comment := ""
		_, err = s.service.Update(s.ctx, UpdateParams{ID: fb.ID, Comment: &comment})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown feedback is not found", func() {
		rating := 3
		_, err := s.service.Update(s.ctx, UpdateParams{ID: id.NewFeedbackID(), Rating: &rating})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestListing() {
	s.Run("empty listings are not found", func() {
		_, err := s.service.List(s.ctx)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

		_, err = s.service.ListByUser(s.ctx, s.author)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

		_, err = s.service.ListBySwapRequest(s.ctx, s.swap)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("filters by author and swap request", func() {
		first, err := s.service.Create(s.ctx, s.validParams())
		s.Require().NoError(err)

		other := id.NewUserID()
		s.service.users.(*stubUsers).known[other] = true
		params := s.validParams()
		params.UserID = other
		_, err = s.service.Create(s.ctx, params)
		s.Require().NoError(err)

		all, err := s.service.List(s.ctx)
		s.Require().NoError(err)
		s.Len(all, 2)

		byAuthor, err := s.service.ListByUser(s.ctx, s.author)
		s.Require().NoError(err)
		s.Len(byAuthor, 1)
		s.Equal(first.ID, byAuthor[0].ID)

		bySwap, err := s.service.ListBySwapRequest(s.ctx, s.swap)
		s.Require().NoError(err)
		s.Len(bySwap, 2)
	})
}

func (s *ServiceSuite) TestDelete() {
	fb, err := s.service.Create(s.ctx, s.validParams())
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, fb.ID))

	_, err = s.service.GetByID(s.ctx, fb.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	err = s.service.Delete(s.ctx, fb.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
