package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"elevennote-be/internal/dto"
	"elevennote-be/internal/entity"
	"elevennote-be/internal/pkg/logger"
	"elevennote-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type NoteServiceSuite struct {
	suite.Suite

	ctx   context.Context
	store *memory.Store
	clock *fakeClock
	logs  *observer.ObservedLogs

	alice uuid.UUID
	bob   uuid.UUID
}

func TestNoteServiceSuite(t *testing.T) {
	suite.Run(t, new(NoteServiceSuite))
}

func (s *NoteServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.clock = &fakeClock{now: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)}
	s.alice = uuid.New()
	s.bob = uuid.New()
}

func (s *NoteServiceSuite) serviceFor(userId uuid.UUID) INoteService {
	core, logs := observer.New(zap.DebugLevel)
	s.logs = logs
	return NewNoteService(
		memory.NewRepositoryFactory(s.store),
		userId,
		WithClock(s.clock.Now),
		WithLogger(logger.NewFromZap(zap.New(core))),
	)
}

// createOne creates a note and returns the id the store assigned to it.
func (s *NoteServiceSuite) createOne(svc INoteService, title, content string) int {
	ok, err := svc.CreateNote(s.ctx, dto.NoteCreate{Title: title, Content: content})
	s.Require().NoError(err)
	s.Require().True(ok)

	items, err := svc.ListNotes(s.ctx)
	s.Require().NoError(err)
	s.Require().NotEmpty(items)
	return items[len(items)-1].NoteId
}

func (s *NoteServiceSuite) TestCreateThenGet() {
	svc := s.serviceFor(s.alice)

	id := s.createOne(svc, "T", "C")

	detail, err := svc.GetNoteById(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(id, detail.NoteId)
	s.Equal("T", detail.Title)
	s.Equal("C", detail.Content)
	s.Nil(detail.ModifiedUtc)
	s.WithinDuration(s.clock.Now(), detail.CreatedUtc, time.Second)
}

func (s *NoteServiceSuite) TestCreateAssignsOwnerAndDefaults() {
	svc := s.serviceFor(s.alice)
	id := s.createOne(svc, "groceries", "milk")

	notes, err := memory.NewNoteRepository(s.store).FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(notes, 1)

	stored := notes[0]
	s.Equal(id, stored.NoteId)
	s.Equal(s.alice, stored.OwnerId)
	s.False(stored.IsStarred)
	s.Nil(stored.ModifiedUtc)
	s.Equal(time.UTC, stored.CreatedUtc.Location())
}

func (s *NoteServiceSuite) TestOtherUserCannotSeeOrTouchNote() {
	aliceSvc := s.serviceFor(s.alice)
	id := s.createOne(aliceSvc, "private", "secret")

	bobSvc := s.serviceFor(s.bob)

	detail, err := bobSvc.GetNoteById(s.ctx, id)
	s.ErrorIs(err, ErrNoteNotFound)
	s.Nil(detail)

	ok, err := bobSvc.UpdateNote(s.ctx, dto.NoteEdit{NoteId: id, Title: "hijacked", Content: "x"})
	s.ErrorIs(err, ErrNoteNotFound)
	s.False(ok)

	ok, err = bobSvc.DeleteNote(s.ctx, id)
	s.ErrorIs(err, ErrNoteNotFound)
	s.False(ok)

	items, err := bobSvc.ListNotes(s.ctx)
	s.NoError(err)
	s.Empty(items)

	// Alice's note is untouched.
	detail, err = aliceSvc.GetNoteById(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("private", detail.Title)
	s.Equal("secret", detail.Content)
	s.Nil(detail.ModifiedUtc)
}

func (s *NoteServiceSuite) TestMissingIdIsIndistinguishableFromForeignNote() {
	aliceSvc := s.serviceFor(s.alice)
	id := s.createOne(aliceSvc, "a", "b")

	bobSvc := s.serviceFor(s.bob)
	_, foreignErr := bobSvc.GetNoteById(s.ctx, id)
	_, missingErr := bobSvc.GetNoteById(s.ctx, id+1000)

	s.ErrorIs(foreignErr, ErrNoteNotFound)
	s.ErrorIs(missingErr, ErrNoteNotFound)
}

func (s *NoteServiceSuite) TestUpdateThenGet() {
	svc := s.serviceFor(s.alice)
	id := s.createOne(svc, "draft", "v1")
	createdAt := s.clock.Now()

	s.clock.Advance(5 * time.Minute)
	ok, err := svc.UpdateNote(s.ctx, dto.NoteEdit{NoteId: id, Title: "final", Content: "v2"})
	s.Require().NoError(err)
	s.True(ok)

	detail, err := svc.GetNoteById(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("final", detail.Title)
	s.Equal("v2", detail.Content)
	s.Equal(createdAt, detail.CreatedUtc)
	s.Require().NotNil(detail.ModifiedUtc)
	s.False(detail.ModifiedUtc.Before(detail.CreatedUtc))
	firstModified := *detail.ModifiedUtc

	s.clock.Advance(time.Minute)
	ok, err = svc.UpdateNote(s.ctx, dto.NoteEdit{NoteId: id, Title: "final", Content: "v3"})
	s.Require().NoError(err)
	s.True(ok)

	detail, err = svc.GetNoteById(s.ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(detail.ModifiedUtc)
	s.True(detail.ModifiedUtc.After(firstModified))
	s.Equal(createdAt, detail.CreatedUtc)

	notes, err := memory.NewNoteRepository(s.store).FindAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.alice, notes[0].OwnerId)
}

func (s *NoteServiceSuite) TestUpdateMissingNote() {
	svc := s.serviceFor(s.alice)

	ok, err := svc.UpdateNote(s.ctx, dto.NoteEdit{NoteId: 42, Title: "t", Content: "c"})
	s.ErrorIs(err, ErrNoteNotFound)
	s.False(ok)
}

func (s *NoteServiceSuite) TestDeleteThenGet() {
	svc := s.serviceFor(s.alice)
	id := s.createOne(svc, "temp", "gone soon")

	ok, err := svc.DeleteNote(s.ctx, id)
	s.Require().NoError(err)
	s.True(ok)

	_, err = svc.GetNoteById(s.ctx, id)
	s.ErrorIs(err, ErrNoteNotFound)
}

func (s *NoteServiceSuite) TestDeleteTwice() {
	svc := s.serviceFor(s.alice)
	id := s.createOne(svc, "once", "")

	ok, err := svc.DeleteNote(s.ctx, id)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = svc.DeleteNote(s.ctx, id)
	s.ErrorIs(err, ErrNoteNotFound)
	s.False(ok)

	count, err := memory.NewNoteRepository(s.store).Count(s.ctx)
	s.NoError(err)
	s.Zero(count)
}

func (s *NoteServiceSuite) TestListReflectsOwnedNotes() {
	aliceSvc := s.serviceFor(s.alice)
	bobSvc := s.serviceFor(s.bob)

	const n = 5
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, s.createOne(aliceSvc, "note", "body"))
	}
	s.createOne(bobSvc, "bob's", "body")

	ok, err := aliceSvc.DeleteNote(s.ctx, ids[2])
	s.Require().NoError(err)
	s.Require().True(ok)

	items, err := aliceSvc.ListNotes(s.ctx)
	s.Require().NoError(err)
	s.Len(items, n-1)

	got := make([]int, 0, len(items))
	for _, item := range items {
		got = append(got, item.NoteId)
		s.Equal("note", item.Title)
	}
	s.ElementsMatch([]int{ids[0], ids[1], ids[3], ids[4]}, got)
}

func (s *NoteServiceSuite) TestListEmpty() {
	items, err := s.serviceFor(s.alice).ListNotes(s.ctx)
	s.NoError(err)
	s.NotNil(items)
	s.Empty(items)
}

func (s *NoteServiceSuite) TestEmptyAndLongStringsAccepted() {
	svc := s.serviceFor(s.alice)

	emptyId := s.createOne(svc, "", "")
	detail, err := svc.GetNoteById(s.ctx, emptyId)
	s.Require().NoError(err)
	s.Empty(detail.Title)
	s.Empty(detail.Content)

	long := strings.Repeat("x", 1<<16)
	longId := s.createOne(svc, long, long)
	detail, err = svc.GetNoteById(s.ctx, longId)
	s.Require().NoError(err)
	s.Len(detail.Title, 1<<16)
	s.Len(detail.Content, 1<<16)
}

func (s *NoteServiceSuite) TestDuplicateRowsAreNotUnique() {
	for i := 0; i < 2; i++ {
		s.store.Insert(entity.Note{NoteId: 7, OwnerId: s.alice, Title: "dup", CreatedUtc: s.clock.Now()})
	}
	svc := s.serviceFor(s.alice)

	_, err := svc.GetNoteById(s.ctx, 7)
	s.ErrorIs(err, ErrNoteNotUnique)
	s.False(errors.Is(err, ErrNoteNotFound))

	ok, err := svc.DeleteNote(s.ctx, 7)
	s.ErrorIs(err, ErrNoteNotUnique)
	s.False(ok)
}

func (s *NoteServiceSuite) TestEveryOperationReleasesItsConnection() {
	svc := s.serviceFor(s.alice)
	id := s.createOne(svc, "t", "c") // create + list

	_, _ = svc.GetNoteById(s.ctx, id)
	_, _ = svc.GetNoteById(s.ctx, id+1) // error path
	_, _ = svc.UpdateNote(s.ctx, dto.NoteEdit{NoteId: id, Title: "u"})
	_, _ = svc.DeleteNote(s.ctx, id)
	_, _ = svc.DeleteNote(s.ctx, id) // error path

	s.Equal(int64(7), s.store.ConnectionsAcquired())
	s.Zero(s.store.ConnectionsActive())
}

func (s *NoteServiceSuite) TestNotFoundIsLoggedAsWarning() {
	svc := s.serviceFor(s.alice)

	_, err := svc.GetNoteById(s.ctx, 99)
	s.Require().Error(err)

	entries := s.logs.FilterMessage("Note not found on get").All()
	s.Require().Len(entries, 1)
	s.Equal(zap.WarnLevel, entries[0].Level)
	s.Equal(noteModule, entries[0].ContextMap()["module"])
}

func TestNoteServiceCanceledContext(t *testing.T) {
	svc := NewNoteService(memory.NewRepositoryFactory(memory.NewStore()), uuid.New())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := svc.CreateNote(ctx, dto.NoteCreate{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)

	_, err = svc.ListNotes(ctx)
	require.Error(t, err)
}
