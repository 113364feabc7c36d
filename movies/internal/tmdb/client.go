package tmdb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"context"

	"github.com/alexkharrod/webapps/movies/internal/errs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Config struct {
	BaseURL       string `yaml:"baseURL" envconfig:"TMDB_BASE_URL" default:"https://api.themoviedb.org/3"`
	Token         string `yaml:"token" envconfig:"TMDB_TOKEN" json:"-"`
	PosterBaseURL string `yaml:"posterBaseURL" envconfig:"TMDB_POSTER_BASE_URL" default:"https://image.tmdb.org/t/p/w500"`
}

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
		log: log.Named("tmdb"),
	}
}

// Candidate is one search hit. Fields the API leaves out stay zero-valued;
// a partial candidate never aborts the whole list.
type Candidate struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
}

// Year is the release year, or 0 when the release date is absent or odd.
func (c Candidate) Year() int {
	if len(c.ReleaseDate) < 4 {
		return 0
	}
	y, err := strconv.Atoi(c.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return y
}

type Detail struct {
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
}

func (d Detail) Year() int {
	return Candidate{ReleaseDate: d.ReleaseDate}.Year()
}

func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	u := fmt.Sprintf("%s/search/movie?query=%s&include_adult=false", c.cfg.BaseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(errs.ErrExternalLookup, err.Error())
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errs.ErrExternalLookup, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, errors.Wrapf(errs.ErrExternalLookup, "search status %d", resp.StatusCode)
	}

	var body struct {
		Results []Candidate `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(errs.ErrExternalLookup, err.Error())
	}
	return body.Results, nil
}

// Detail fetches the full record for one external id. Any transport error,
// error status or payload without a title fails the lookup whole: the caller
// must not create a record from a partial payload.
func (c *Client) Detail(ctx context.Context, id int) (Detail, error) {
	u := fmt.Sprintf("%s/movie/%d", c.cfg.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return Detail{}, errors.Wrap(errs.ErrExternalLookup, err.Error())
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return Detail{}, errors.Wrap(errs.ErrExternalLookup, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Detail{}, errors.Wrapf(errs.ErrExternalLookup, "detail %d status %d", id, resp.StatusCode)
	}

	var d Detail
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return Detail{}, errors.Wrap(errs.ErrExternalLookup, err.Error())
	}
	if d.Title == "" {
		return Detail{}, errors.Wrapf(errs.ErrExternalLookup, "detail %d has no title", id)
	}
	return d, nil
}

// PosterURL joins the configured poster base with the path fragment the API
// returns. An empty fragment yields an empty URL.
func (c *Client) PosterURL(path string) string {
	if path == "" {
		return ""
	}
	return c.cfg.PosterBaseURL + path
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
}
