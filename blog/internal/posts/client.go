package posts

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/alexkharrod/webapps/blog/internal/errs"
	"github.com/alexkharrod/webapps/blog/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Config struct {
	FeedURL string `yaml:"feedURL" envconfig:"POSTS_FEED_URL" default:"https://api.npoint.io/c790b4d5cab58020d391"`
}

// Client fetches the post collection from the external JSON feed. The blog
// treats the feed as read-only content, loaded once at startup.
type Client struct {
	cfg    Config
	client *http.Client
	log    *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Minute,
		},
		log: log.Named("posts"),
	}
}

func (c *Client) Fetch(ctx context.Context) ([]model.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.FeedURL, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(errs.ErrFeedFailed, err.Error())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errs.ErrFeedFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, errors.Wrapf(errs.ErrFeedFailed, "feed status %d", resp.StatusCode)
	}

	var posts []model.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, errors.Wrap(errs.ErrFeedFailed, err.Error())
	}
	return posts, nil
}
