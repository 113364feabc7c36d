package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexkharrod/webapps/cafe/internal/errs"
	"github.com/alexkharrod/webapps/cafe/internal/handler"
	"github.com/alexkharrod/webapps/cafe/internal/model"
	"github.com/alexkharrod/webapps/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/alexkharrod/webapps/cafe/internal/handler/mocks"
)

func strPtr(s string) *string { return &s }

func newEcho(t *testing.T, svc *service_mocks.MockCafeService) *echo.Echo {
	t.Helper()
	log := zap.NewExample().Named("test")
	h := handler.New(svc, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/random", h.RandomCafe)
	e.GET("/all", h.GetAll)
	e.GET("/search", h.Search)
	e.POST("/add", h.AddCafe)
	e.PATCH("/update-price/:id", h.UpdatePrice)
	e.Match([]string{http.MethodGet, http.MethodPost, http.MethodDelete}, "/report-closed/:id", h.ReportClosed)
	return e
}

func TestHandler_Search(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCafeService)

	blueBottle := model.Cafe{
		ID:          1,
		Name:        "Blue Bottle",
		MapURL:      "https://maps.example.com/blue-bottle",
		ImgURL:      "https://img.example.com/blue-bottle.jpg",
		Location:    "Downtown",
		Seats:       "20-30",
		HasWifi:     true,
		HasSockets:  true,
		CoffeePrice: strPtr("3.50"),
	}

	var tests = []struct {
		name         string
		loc          string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			loc:  "Downtown",
			mockBehavior: func(r *service_mocks.MockCafeService) {
				r.EXPECT().
					ListCafes(context.Background(), "Downtown").
					Return([]model.Cafe{blueBottle}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"cafes":[{"id":1,"name":"Blue Bottle","map_url":"https://maps.example.com/blue-bottle","img_url":"https://img.example.com/blue-bottle.jpg","location":"Downtown","seats":"20-30","has_toilet":false,"has_wifi":true,"has_sockets":true,"can_take_calls":false,"coffee_price":"3.50"}]}`,
			},
		},
		{
			name:         "err. missing loc",
			loc:          "",
			mockBehavior: func(r *service_mocks.MockCafeService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":{"bad_request":"loc query parameter is required"}}`,
			},
		},
		{
			name: "err. no cafes at location",
			loc:  "Atlantis",
			mockBehavior: func(r *service_mocks.MockCafeService) {
				r.EXPECT().
					ListCafes(context.Background(), "Atlantis").
					Return([]model.Cafe{}, nil)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"error":{"not_found":"sorry, we don't have a cafe at that location"}}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCafeService(c)
			tt.mockBehavior(svc)
			e := newEcho(t, svc)

			target := "/search"
			if tt.loc != "" {
				target += "?loc=" + url.QueryEscape(tt.loc)
			}
			r := httptest.NewRequest(http.MethodGet, target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_AddCafe(t *testing.T) {
	t.Parallel()
	form := url.Values{
		"name":         {"Blue Bottle"},
		"map_url":      {"https://maps.example.com/blue-bottle"},
		"img_url":      {"https://img.example.com/blue-bottle.jpg"},
		"location":     {"Downtown"},
		"seats":        {"20-30"},
		"wifi":         {"true"},
		"sockets":      {"true"},
		"coffee_price": {"3.50"},
	}
	want := model.Cafe{
		Name:        "Blue Bottle",
		MapURL:      "https://maps.example.com/blue-bottle",
		ImgURL:      "https://img.example.com/blue-bottle.jpg",
		Location:    "Downtown",
		Seats:       "20-30",
		HasWifi:     true,
		HasSockets:  true,
		CoffeePrice: strPtr("3.50"),
	}

	type response struct {
		expectedCode int
		expectedBody string
	}
	var tests = []struct {
		name         string
		form         url.Values
		mockBehavior func(r *service_mocks.MockCafeService)
		response     response
	}{
		{
			name: "ok",
			form: form,
			mockBehavior: func(r *service_mocks.MockCafeService) {
				r.EXPECT().
					CreateCafe(context.Background(), want).
					Return(1, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"response":{"id":1,"success":"Successfully added the new cafe."}}`,
			},
		},
		{
			name: "err. duplicate name",
			form: form,
			mockBehavior: func(r *service_mocks.MockCafeService) {
				r.EXPECT().
					CreateCafe(context.Background(), want).
					Return(0, errs.ErrUniqueViolation)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"error":{"conflict":"a cafe named \"Blue Bottle\" already exists"}}`,
			},
		},
		{
			name:         "err. missing required fields",
			form:         url.Values{"name": {"No Location"}},
			mockBehavior: func(r *service_mocks.MockCafeService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":{"bad_request":"missing required cafe fields"}}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCafeService(c)
			tt.mockBehavior(svc)
			e := newEcho(t, svc)

			r := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(tt.form.Encode()))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdatePrice(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	var tests = []struct {
		name         string
		target       string
		mockBehavior func(r *service_mocks.MockCafeService)
		response     response
	}{
		{
			name:   "ok",
			target: "/update-price/1?new_price=5.50",
			mockBehavior: func(r *service_mocks.MockCafeService) {
				r.EXPECT().
					UpdatePrice(context.Background(), 1, "5.50").
					Return(model.Cafe{ID: 1, Name: "Blue Bottle", CoffeePrice: strPtr("5.50")}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"update":{"success":"Cafe:Blue Bottle price has been updated to 5.50"}}`,
			},
		},
		{
			name:   "err. unknown id",
			target: "/update-price/99?new_price=5.50",
			mockBehavior: func(r *service_mocks.MockCafeService) {
				r.EXPECT().
					UpdatePrice(context.Background(), 99, "5.50").
					Return(model.Cafe{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"error":{"not_found":"sorry, a cafe with that id was not found in the database"}}`,
			},
		},
		{
			name:         "err. missing new_price",
			target:       "/update-price/1",
			mockBehavior: func(r *service_mocks.MockCafeService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":{"bad_request":"new_price query parameter is required"}}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCafeService(c)
			tt.mockBehavior(svc)
			e := newEcho(t, svc)

			r := httptest.NewRequest(http.MethodPatch, tt.target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ReportClosed(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	var tests = []struct {
		name         string
		target       string
		mockBehavior func(r *service_mocks.MockCafeService)
		response     response
	}{
		{
			name:   "ok",
			target: "/report-closed/1?api-key=TopSecretAPIKey",
			mockBehavior: func(r *service_mocks.MockCafeService) {
				r.EXPECT().Authorize("TopSecretAPIKey").Return(true)
				r.EXPECT().DeleteCafe(context.Background(), 1).Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"response":{"success":"Successfully reported the cafe closed."}}`,
			},
		},
		{
			name:   "err. wrong api key leaves record alone",
			target: "/report-closed/1?api-key=nope",
			mockBehavior: func(r *service_mocks.MockCafeService) {
				r.EXPECT().Authorize("nope").Return(false)
				// no DeleteCafe expectation: the gate must short-circuit
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"error":{"forbidden":"sorry, your permissions don't allow this, please check your api key"}}`,
			},
		},
		{
			name:   "err. unknown id",
			target: "/report-closed/99?api-key=TopSecretAPIKey",
			mockBehavior: func(r *service_mocks.MockCafeService) {
				r.EXPECT().Authorize("TopSecretAPIKey").Return(true)
				r.EXPECT().DeleteCafe(context.Background(), 99).Return(errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"error":{"not_found":"sorry, a cafe with that id was not found in the database"}}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCafeService(c)
			tt.mockBehavior(svc)
			e := newEcho(t, svc)

			r := httptest.NewRequest(http.MethodDelete, tt.target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

// Add -> list -> patch price -> list again, the sequence from the API's
// happy path, against an evolving mock store.
func TestHandler_AddUpdateFlow(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCafeService(c)
	e := newEcho(t, svc)

	created := model.Cafe{
		ID:       1,
		Name:     "Blue Bottle",
		MapURL:   "https://maps.example.com/blue-bottle",
		ImgURL:   "https://img.example.com/blue-bottle.jpg",
		Location: "Downtown",
		Seats:    "20-30",
		HasWifi:  true,
	}
	updated := created
	updated.CoffeePrice = strPtr("5.50")

	gomock.InOrder(
		svc.EXPECT().CreateCafe(context.Background(), gomock.Any()).Return(1, nil),
		svc.EXPECT().ListCafes(context.Background(), "").Return([]model.Cafe{created}, nil),
		svc.EXPECT().UpdatePrice(context.Background(), 1, "5.50").Return(updated, nil),
		svc.EXPECT().ListCafes(context.Background(), "").Return([]model.Cafe{updated}, nil),
	)

	form := url.Values{
		"name":     {"Blue Bottle"},
		"map_url":  {"https://maps.example.com/blue-bottle"},
		"img_url":  {"https://img.example.com/blue-bottle.jpg"},
		"location": {"Downtown"},
		"seats":    {"20-30"},
		"wifi":     {"true"},
	}
	r := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(form.Encode()))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/all", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"Blue Bottle"`)
	require.Contains(t, w.Body.String(), `"coffee_price":null`)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/update-price/1?new_price=5.50", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/all", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), fmt.Sprintf(`"coffee_price":%q`, "5.50"))
}
