package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	md "github.com/alexkharrod/webapps/pkg/middleware"

	"github.com/alexkharrod/webapps/blog/internal/errs"
	"github.com/alexkharrod/webapps/blog/internal/model"
	"github.com/alexkharrod/webapps/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	blogSvc BlogService
	log     *zap.Logger
}

func New(blogSvc BlogService, log *zap.Logger) *Handler {
	return &Handler{
		blogSvc: blogSvc,
		log:     log,
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
	pages.GET("/about", h.About)
	pages.GET("/post/:id", h.ShowPost)
	pages.GET("/contact", h.ContactForm)
	pages.POST("/contact", h.Contact)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Home(c echo.Context) error {
	posts := h.blogSvc.Posts(c.Request().Context())
	return c.Render(http.StatusOK, "index.html", echo.Map{"Posts": posts})
}

func (h *Handler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", nil)
}

// ShowPost stays lenient: an unknown or malformed id renders the page with
// no post instead of a 404.
func (h *Handler) ShowPost(c echo.Context) error {
	data := echo.Map{"Post": nil, "Found": false}
	if id, err := strconv.Atoi(c.Param("id")); err == nil {
		if post, ok := h.blogSvc.Post(c.Request().Context(), id); ok {
			data["Post"] = post
			data["Found"] = true
		}
	}
	return c.Render(http.StatusOK, "post.html", data)
}

func (h *Handler) ContactForm(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", nil)
}

func (h *Handler) Contact(c echo.Context) error {
	var req model.ContactRequest
	if err := c.Bind(&req); err != nil {
		return h.renderError(c, http.StatusBadRequest, "could not read the form")
	}
	if err := c.Validate(req); err != nil {
		return h.renderError(c, http.StatusBadRequest, "all form fields are required and email must be valid")
	}

	if err := h.blogSvc.SendContact(c.Request().Context(), req); err != nil {
		if errors.Is(err, errs.ErrDelivery) {
			return h.renderError(c, http.StatusInternalServerError, "sorry, your message could not be delivered, try again later")
		}
		return h.renderError(c, http.StatusInternalServerError, "something went wrong")
	}
	return c.HTML(http.StatusOK, fmt.Sprintf("<h1>Hello %s, we successfully sent your message</h1>", template.HTMLEscapeString(req.Name)))
}

func (h *Handler) renderError(c echo.Context, status int, message string) error {
	return c.Render(status, "error.html", echo.Map{"Message": message})
}
