package service

import (
	"context"

	"github.com/alexkharrod/webapps/blog/internal/model"
	"go.uber.org/zap"
)

// Relay is the outbound side of the contact form.
type Relay interface {
	SendContact(req model.ContactRequest) error
}

type Service struct {
	log   *zap.Logger
	posts []model.Post
	relay Relay
}

// NewService holds the startup-fetched post list; it is immutable after
// load, so requests share it without coordination.
func NewService(posts []model.Post, relay Relay, log *zap.Logger) *Service {
	return &Service{
		log:   log,
		posts: posts,
		relay: relay,
	}
}

func (s *Service) Posts(context.Context) []model.Post {
	return s.posts
}

// Post returns the post with the given id, or ok=false. The page route
// stays lenient on unknown ids, so no error here.
func (s *Service) Post(_ context.Context, id int) (model.Post, bool) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return model.Post{}, false
}

func (s *Service) SendContact(_ context.Context, req model.ContactRequest) error {
	return s.relay.SendContact(req)
}
