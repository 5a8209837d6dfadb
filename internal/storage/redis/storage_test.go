package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/courtbot/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.HistorySize = 3
	cfg.HistoryTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) appendN(n int) {
	for i := 1; i <= n; i++ {
		err := s.storage.AppendMessage(s.ctx, &model.ChatMessage{
			Sender: "Bob",
			Text:   fmt.Sprintf("msg %d", i),
			Kind:   model.MessageKindChat,
		})
		s.Require().NoError(err)
	}
}

func texts(msgs []*model.ChatMessage) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Text
	}
	return out
}

func (s *StorageSuite) TestRecentMessagesEmpty() {
	msgs, err := s.storage.RecentMessages(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(msgs)
}

func (s *StorageSuite) TestAppendAndRecentMessages() {
	s.appendN(2)

	msgs, err := s.storage.RecentMessages(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal([]string{"msg 1", "msg 2"}, texts(msgs))
	s.Equal("Bob", msgs[0].Sender)
	s.Equal(model.MessageKindChat, msgs[0].Kind)
}

func (s *StorageSuite) TestAppendTrimsToHistorySize() {
	s.appendN(5)

	items, err := s.mini.List(historyKey())
	s.Require().NoError(err)
	s.Len(items, 3)

	msgs, err := s.storage.RecentMessages(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal([]string{"msg 3", "msg 4", "msg 5"}, texts(msgs))
}

func (s *StorageSuite) TestRecentMessagesLimit() {
	s.appendN(3)

	msgs, err := s.storage.RecentMessages(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal([]string{"msg 2", "msg 3"}, texts(msgs))
}

func (s *StorageSuite) TestHistoryExpires() {
	s.appendN(1)

	s.True(s.mini.Exists(historyKey()))
	s.mini.FastForward(2 * time.Hour)
	s.False(s.mini.Exists(historyKey()))
}

func (s *StorageSuite) TestClearMessages() {
	s.appendN(2)

	s.Require().NoError(s.storage.ClearMessages(s.ctx))

	msgs, err := s.storage.RecentMessages(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(msgs)
}

func (s *StorageSuite) TestUnavailable() {
	s.mini.Close()

	err := s.storage.AppendMessage(s.ctx, &model.ChatMessage{Sender: "Bob", Text: "hi"})
	s.ErrorIs(err, model.ErrHistoryUnavailable)

	_, err = s.storage.RecentMessages(s.ctx, 1)
	s.ErrorIs(err, model.ErrHistoryUnavailable)
}
