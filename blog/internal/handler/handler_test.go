package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexkharrod/webapps/blog/internal/errs"
	"github.com/alexkharrod/webapps/blog/internal/handler"
	"github.com/alexkharrod/webapps/blog/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/alexkharrod/webapps/blog/internal/handler/mocks"
)

func newRouter(t *testing.T) (*echo.Echo, *service_mocks.MockBlogService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockBlogService(c)
	log := zap.NewExample().Named("test")
	return handler.New(svc, log).NewRouter(), svc
}

func TestHandler_Home(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	svc.EXPECT().Posts(gomock.Any()).Return([]model.Post{
		{ID: 1, Title: "First Post", Subtitle: "It begins"},
	})

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "First Post")
	require.Contains(t, w.Body.String(), "/post/1")
}

func TestHandler_ShowPost(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			Post(gomock.Any(), 1).
			Return(model.Post{ID: 1, Title: "First Post", Body: "Hello."}, true)

		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/post/1", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "First Post")
	})

	t.Run("unknown id renders empty page, not an error", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().Post(gomock.Any(), 99).Return(model.Post{}, false)

		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/post/99", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "No such post")
	})
}

func TestHandler_Contact(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"phone":   {"555-0100"},
		"message": {"I enjoyed the latest post."},
	}
	want := model.ContactRequest{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "555-0100",
		Message: "I enjoyed the latest post.",
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().SendContact(gomock.Any(), want).Return(nil)

		r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Hello Ada Lovelace, we successfully sent your message")
	})

	t.Run("err delivery failure is surfaced", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().SendContact(gomock.Any(), want).Return(errs.ErrDelivery)

		r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, w.Body.String(), "could not be delivered")
	})

	t.Run("err invalid email", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)

		bad := url.Values{
			"name":    {"Ada"},
			"email":   {"not-an-email"},
			"phone":   {"555-0100"},
			"message": {"hi"},
		}
		r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(bad.Encode()))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
