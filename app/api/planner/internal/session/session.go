package session

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/RayDR/YelpOut/app/common/consts/biz"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
	"github.com/RayDR/YelpOut/app/api/planner/internal/itinerary"
)

type Message struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Text string `json:"text"`
	At   int64  `json:"at"`
}

// Session is one user's live planning conversation. The awaiting state and
// the active question live beside the context: they describe the dialogue,
// not the plan.
type Session struct {
	ID             string                    `json:"id"`
	Context        *conversation.PlanContext `json:"context"`
	Awaiting       conversation.Awaiting     `json:"awaiting"`
	ActiveQuestion conversation.QuestionKey  `json:"activeQuestion"`
	Language       conversation.Language     `json:"language"`
	Messages       []Message                 `json:"messages"`
	Blocks         []itinerary.PlanBlock     `json:"blocks,omitempty"`
	CreatedAt      time.Time                 `json:"createdAt"`
}

func (s *Session) AppendMessage(role, text string, at time.Time) {
	s.Messages = append(s.Messages, Message{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
		At:   at.Unix(),
	})
}

// Reset wipes the plan but keeps the session id and language, for "start over".
func (s *Session) Reset() {
	s.Context = &conversation.PlanContext{}
	s.Awaiting = conversation.Awaiting{}
	s.ActiveQuestion = ""
	s.Blocks = nil
}

// Store keeps sessions in process memory with a sliding TTL. Every Put
// refreshes the expiry, so a session dies only after idle time.
type Store struct {
	cache *gocache.Cache
}

func NewStore() *Store {
	return &Store{cache: gocache.New(biz.SessionTTL, biz.SessionSweep)}
}

func (s *Store) New(id string, lang conversation.Language, now time.Time) *Session {
	sess := &Session{
		ID:        id,
		Context:   &conversation.PlanContext{},
		Language:  lang,
		CreatedAt: now,
	}
	s.cache.Set(id, sess, gocache.DefaultExpiration)
	return sess
}

func (s *Store) Get(id string) (*Session, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

func (s *Store) Put(sess *Session) {
	s.cache.Set(sess.ID, sess, gocache.DefaultExpiration)
}

func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}
