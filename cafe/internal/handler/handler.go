package handler

import (
	"fmt"
	"net/http"
	"strconv"

	md "github.com/alexkharrod/webapps/pkg/middleware"

	"github.com/alexkharrod/webapps/cafe/internal/errs"
	"github.com/alexkharrod/webapps/cafe/internal/model"
	"github.com/alexkharrod/webapps/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	cafeSvc CafeService
	log     *zap.Logger
}

func New(cafeSvc CafeService, log *zap.Logger) *Handler {
	return &Handler{
		cafeSvc: cafeSvc,
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
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/random", h.RandomCafe)
	api.GET("/all", h.GetAll)
	api.GET("/search", h.Search)
	api.POST("/add", h.AddCafe)
	api.PATCH("/update-price/:id", h.UpdatePrice)
	api.Match([]string{http.MethodGet, http.MethodPost, http.MethodDelete}, "/report-closed/:id", h.ReportClosed)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) RandomCafe(c echo.Context) error {
	cafe, err := h.cafeSvc.RandomCafe(c.Request().Context())
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": echo.Map{"not_found": "no cafes yet"}})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": echo.Map{"internal": err.Error()}})
	}
	return c.JSON(http.StatusOK, echo.Map{"cafe": cafe})
}

func (h *Handler) GetAll(c echo.Context) error {
	cafes, err := h.cafeSvc.ListCafes(c.Request().Context(), "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": echo.Map{"internal": err.Error()}})
	}
	return c.JSON(http.StatusOK, echo.Map{"cafes": cafes})
}

// Search filters cafes by exact location. A missing loc parameter is a 400:
// the route is unusable without it.
func (h *Handler) Search(c echo.Context) error {
	location := c.QueryParam("loc")
	if location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": echo.Map{"bad_request": "loc query parameter is required"}})
	}

	cafes, err := h.cafeSvc.ListCafes(c.Request().Context(), location)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": echo.Map{"internal": err.Error()}})
	}
	if len(cafes) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": echo.Map{"not_found": "sorry, we don't have a cafe at that location"}})
	}
	return c.JSON(http.StatusOK, echo.Map{"cafes": cafes})
}

func (h *Handler) AddCafe(c echo.Context) error {
	var req model.CreateCafeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": echo.Map{"bad_request": err.Error()}})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": echo.Map{"bad_request": "missing required cafe fields"}})
	}

	id, err := h.cafeSvc.CreateCafe(c.Request().Context(), req.Cafe())
	if err != nil {
		if errors.Is(err, errs.ErrUniqueViolation) {
			return c.JSON(http.StatusConflict, echo.Map{"error": echo.Map{"conflict": fmt.Sprintf("a cafe named %q already exists", req.Name)}})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": echo.Map{"internal": err.Error()}})
	}
	return c.JSON(http.StatusOK, echo.Map{"response": echo.Map{"success": "Successfully added the new cafe.", "id": id}})
}

func (h *Handler) UpdatePrice(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": echo.Map{"bad_request": "id must be an integer"}})
	}
	newPrice := c.QueryParam("new_price")
	if newPrice == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": echo.Map{"bad_request": "new_price query parameter is required"}})
	}

	cafe, err := h.cafeSvc.UpdatePrice(c.Request().Context(), id, newPrice)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": echo.Map{"not_found": "sorry, a cafe with that id was not found in the database"}})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": echo.Map{"internal": err.Error()}})
	}
	return c.JSON(http.StatusOK, echo.Map{"update": echo.Map{"success": fmt.Sprintf("Cafe:%s price has been updated to %s", cafe.Name, newPrice)}})
}

func (h *Handler) ReportClosed(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": echo.Map{"bad_request": "id must be an integer"}})
	}
	if !h.cafeSvc.Authorize(c.QueryParam("api-key")) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": echo.Map{"forbidden": "sorry, your permissions don't allow this, please check your api key"}})
	}

	if err := h.cafeSvc.DeleteCafe(c.Request().Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": echo.Map{"not_found": "sorry, a cafe with that id was not found in the database"}})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": echo.Map{"internal": err.Error()}})
	}
	return c.JSON(http.StatusOK, echo.Map{"response": echo.Map{"success": "Successfully reported the cafe closed."}})
}
