package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursestore/models"
	"coursestore/services/catalog"
	"coursestore/services/ledger"
	"coursestore/services/order"

	"github.com/gin-gonic/gin"
)

type fakeCatalog struct {
	lessons   []models.Lesson
	searchErr error
}

func (f *fakeCatalog) ListLessons(ctx context.Context) ([]models.Lesson, error) {
	return f.lessons, nil
}

func (f *fakeCatalog) SearchLessons(ctx context.Context, query string) ([]models.Lesson, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if strings.TrimSpace(query) == "" {
		return nil, catalog.ErrEmptyQuery
	}
	return f.lessons, nil
}

func (f *fakeCatalog) SeedIfEmpty(ctx context.Context) (int, error) { return 0, nil }
func (f *fakeCatalog) ForceReseed(ctx context.Context) (int, error) { return 12, nil }

type fakeLedger struct {
	setErr error
	setTo  []int
}

func (f *fakeLedger) ReserveSeats(ctx context.Context, lessonID, count int) (int, error) {
	return 0, nil
}
func (f *fakeLedger) ReleaseSeats(ctx context.Context, lessonID, count int) error { return nil }
func (f *fakeLedger) SetSeats(ctx context.Context, lessonID, seats int) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setTo = append(f.setTo, seats)
	return nil
}

type fakeOrderService struct {
	submitted []order.OrderInput
	submitErr error
}

func (f *fakeOrderService) SubmitOrder(ctx context.Context, input order.OrderInput) (*models.Order, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, input)
	return &models.Order{ID: "order-1", Name: input.Name, Status: models.OrderStatusConfirmed}, nil
}

func (f *fakeOrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return nil, nil
}

func newTestRouter(lh *LessonHandler, oh *OrderHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if lh != nil {
		r.GET("/lessons", lh.ListLessonsHandler)
		r.PUT("/lessons/:id", lh.UpdateLessonSeatsHandler)
		r.GET("/search", lh.SearchLessonsHandler)
	}
	if oh != nil {
		r.POST("/orders", oh.CreateOrderHandler)
	}
	return r
}

func TestLessonHandlers(t *testing.T) {
	t.Run("search echoes the query and result count", func(t *testing.T) {
		cat := &fakeCatalog{lessons: []models.Lesson{{ID: 2001, Title: "Mathematics"}}}
		r := newTestRouter(NewLessonHandler(cat, &fakeLedger{}), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search?q=math", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Query   string          `json:"query"`
			Count   int             `json:"count"`
			Results []models.Lesson `json:"results"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Query != "math" || body.Count != 1 || len(body.Results) != 1 {
			t.Fatalf("unexpected envelope: %+v", body)
		}
	})

	t.Run("empty search query returns 400", func(t *testing.T) {
		r := newTestRouter(NewLessonHandler(&fakeCatalog{}, &fakeLedger{}), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("seat update requires availableSeats", func(t *testing.T) {
		lg := &fakeLedger{}
		r := newTestRouter(NewLessonHandler(&fakeCatalog{}, lg), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/lessons/2001", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(lg.setTo) != 0 {
			t.Fatalf("expected no ledger call, got %v", lg.setTo)
		}
	})

	t.Run("seat update on missing lesson returns 404", func(t *testing.T) {
		lg := &fakeLedger{setErr: &ledger.NotFoundError{LessonID: 9999}}
		r := newTestRouter(NewLessonHandler(&fakeCatalog{}, lg), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/lessons/9999", strings.NewReader(`{"availableSeats": 5}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("non-integer lesson id returns 400", func(t *testing.T) {
		r := newTestRouter(NewLessonHandler(&fakeCatalog{}, &fakeLedger{}), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/lessons/abc", strings.NewReader(`{"availableSeats": 5}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandlers(t *testing.T) {
	t.Run("valid submission returns 201 with the order", func(t *testing.T) {
		svc := &fakeOrderService{}
		r := newTestRouter(nil, NewOrderHandler(svc))

		payload := `{"name":"Ada","phone":"07000000001","lessonIDs":[2001],"numberOfSpaces":1}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if len(svc.submitted) != 1 {
			t.Fatalf("expected one submission, got %d", len(svc.submitted))
		}
	})

	t.Run("malformed body returns 400 without reaching the service", func(t *testing.T) {
		svc := &fakeOrderService{}
		r := newTestRouter(nil, NewOrderHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"lessonIDs": "oops"`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(svc.submitted) != 0 {
			t.Fatalf("expected no submissions, got %d", len(svc.submitted))
		}
	})

	t.Run("insufficient seats maps to 409", func(t *testing.T) {
		svc := &fakeOrderService{submitErr: &ledger.InsufficientSeatsError{LessonID: 2001, Requested: 3}}
		r := newTestRouter(nil, NewOrderHandler(svc))

		payload := `{"name":"Ada","phone":"07000000001","lessonIDs":[2001],"numberOfSpaces":3}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		svc := &fakeOrderService{submitErr: &order.ValidationError{Field: "phone", Message: "must not be empty"}}
		r := newTestRouter(nil, NewOrderHandler(svc))

		payload := `{"name":"Ada","lessonIDs":[2001],"numberOfSpaces":1}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
