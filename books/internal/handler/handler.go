package handler

import (
	"net/http"

	md "github.com/alexkharrod/webapps/pkg/middleware"

	"github.com/alexkharrod/webapps/books/internal/errs"
	"github.com/alexkharrod/webapps/books/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	bookSvc BookService
	log     *zap.Logger
}

func New(bookSvc BookService, log *zap.Logger) *Handler {
	return &Handler{
		bookSvc: bookSvc,
		log:     log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/", h.Home)
	api.GET("/books", h.ListBooks)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Home inserts the fixed demo record on every visit, so the second request
// hits the title unique constraint.
func (h *Handler) Home(c echo.Context) error {
	if _, err := h.bookSvc.CreateBook(c.Request().Context(), service.DemoBook); err != nil {
		if errors.Is(err, errs.ErrUniqueViolation) {
			return c.JSON(http.StatusConflict, echo.Map{"error": echo.Map{"conflict": "the demo book is already in the catalog"}})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": echo.Map{"internal": err.Error()}})
	}
	return c.String(http.StatusOK, "Home Page")
}

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.bookSvc.ListBooks(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": echo.Map{"internal": err.Error()}})
	}
	return c.JSON(http.StatusOK, echo.Map{"books": books})
}
