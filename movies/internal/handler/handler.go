package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	md "github.com/alexkharrod/webapps/pkg/middleware"

	"github.com/alexkharrod/webapps/movies/internal/errs"
	"github.com/alexkharrod/webapps/movies/internal/model"
	"github.com/alexkharrod/webapps/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	movieSvc MovieService
	log      *zap.Logger
}

func New(movieSvc MovieService, log *zap.Logger) *Handler {
	return &Handler{
		movieSvc: movieSvc,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const pageRPS = 50
	e.Renderer = newRenderer()
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))

	base := e.Group("", md.NewRateLimiter(10))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	pages := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(pageRPS),
	)

	pages.GET("/", h.Home)
	pages.Match([]string{http.MethodGet, http.MethodPost}, "/add", h.Add)
	pages.Match([]string{http.MethodGet, http.MethodPost}, "/select", h.Select)
	pages.Match([]string{http.MethodGet, http.MethodPost}, "/create/:id", h.Create)
	pages.Match([]string{http.MethodGet, http.MethodPost}, "/edit", h.Edit)
	pages.Match([]string{http.MethodGet, http.MethodPost}, "/delete", h.Delete)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Home lists all movies. The ranking recompute rides on this read.
func (h *Handler) Home(c echo.Context) error {
	movies, err := h.movieSvc.ListMovies(c.Request().Context())
	if err != nil {
		return h.renderError(c, http.StatusInternalServerError, "could not load the movie list")
	}
	return c.Render(http.StatusOK, "index.html", echo.Map{"Movies": movies})
}

func (h *Handler) Add(c echo.Context) error {
	if c.Request().Method == http.MethodPost {
		title := c.FormValue("title")
		return c.Redirect(http.StatusFound, "/select?title="+url.QueryEscape(title))
	}
	return c.Render(http.StatusOK, "add.html", nil)
}

func (h *Handler) Select(c echo.Context) error {
	title := c.QueryParam("title")
	candidates, err := h.movieSvc.SearchMovies(c.Request().Context(), title)
	if err != nil {
		if errors.Is(err, errs.ErrExternalLookup) {
			return h.renderError(c, http.StatusBadGateway, "the movie database did not answer, try again later")
		}
		return h.renderError(c, http.StatusInternalServerError, "could not search for movies")
	}
	return c.Render(http.StatusOK, "select.html", echo.Map{"Candidates": candidates})
}

func (h *Handler) Create(c echo.Context) error {
	externalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.renderError(c, http.StatusBadRequest, "movie id must be an integer")
	}

	id, err := h.movieSvc.CreateFromExternal(c.Request().Context(), externalID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrExternalLookup):
			return h.renderError(c, http.StatusBadGateway, "could not fetch the movie details, nothing was added")
		case errors.Is(err, errs.ErrUniqueViolation):
			return h.renderError(c, http.StatusConflict, "that movie is already in the list")
		}
		return h.renderError(c, http.StatusInternalServerError, "could not add the movie")
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/edit?id=%d", id))
}

func (h *Handler) Edit(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("id"))
	if err != nil {
		return h.renderError(c, http.StatusBadRequest, "movie id must be an integer")
	}
	ctx := c.Request().Context()

	if c.Request().Method == http.MethodPost {
		var req model.EditMovieRequest
		if err := c.Bind(&req); err != nil {
			return h.renderError(c, http.StatusBadRequest, "bad rating or review")
		}
		if err := c.Validate(req); err != nil {
			return h.renderError(c, http.StatusBadRequest, "rating must be between 0 and 10 and a review is required")
		}
		if _, err := h.movieSvc.UpdateReview(ctx, id, req.Rating, req.Review); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return h.renderError(c, http.StatusNotFound, "that movie is not in the list")
			}
			return h.renderError(c, http.StatusInternalServerError, "could not save the changes")
		}
		return c.Redirect(http.StatusFound, "/")
	}

	movie, err := h.movieSvc.GetMovie(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return h.renderError(c, http.StatusNotFound, "that movie is not in the list")
		}
		return h.renderError(c, http.StatusInternalServerError, "could not load the movie")
	}
	return c.Render(http.StatusOK, "edit.html", echo.Map{"Movie": movie})
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("id"))
	if err != nil {
		return h.renderError(c, http.StatusBadRequest, "movie id must be an integer")
	}

	if err := h.movieSvc.DeleteMovie(c.Request().Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return h.renderError(c, http.StatusNotFound, "that movie is not in the list")
		}
		return h.renderError(c, http.StatusInternalServerError, "could not delete the movie")
	}
	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) renderError(c echo.Context, status int, message string) error {
	return c.Render(status, "error.html", echo.Map{"Message": message})
}
