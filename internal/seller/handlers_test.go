package seller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tradetalent/backend/internal/store"
	"github.com/tradetalent/backend/internal/validation"
)

type fakeStore struct {
	profiles []Profile
	creates  int
}

func (f *fakeStore) Create(_ context.Context, p Profile) (Profile, error) {
	f.creates++
	for _, existing := range f.profiles {
		if existing.UserEmail == p.UserEmail {
			return Profile{}, store.ErrDuplicate
		}
	}
	p.ID = primitive.NewObjectID()
	f.profiles = append(f.profiles, p)
	return p, nil
}

func (f *fakeStore) GetAll(_ context.Context) ([]Profile, error) {
	return append([]Profile{}, f.profiles...), nil
}

func (f *fakeStore) GetTop(_ context.Context, limit int64) ([]Profile, error) {
	sorted := append([]Profile{}, f.profiles...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	if int64(len(sorted)) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (Profile, error) {
	for _, p := range f.profiles {
		if p.UserEmail == email {
			return p, nil
		}
	}
	return Profile{}, store.ErrNotFound
}

func (f *fakeStore) UpdateByEmail(_ context.Context, email string, fields bson.M) (Profile, error) {
	for i := range f.profiles {
		if f.profiles[i].UserEmail == email {
			if s, ok := fields["title"].(string); ok {
				f.profiles[i].Title = &s
			}
			if r, ok := fields["rating"].(float64); ok {
				f.profiles[i].Rating = r
			}
			if ts, ok := fields["updatedAt"].(time.Time); ok {
				f.profiles[i].UpdatedAt = ts
			}
			return f.profiles[i], nil
		}
	}
	return Profile{}, store.ErrNotFound
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validation.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return env
}

func TestCreateProfileDefaults(t *testing.T) {
	fs := &fakeStore{}
	h := NewHandler(fs, zerolog.Nop())

	c, rec := newContext(t, http.MethodPost, "/seller-profile", `{"userEmail":"s@x.com","title":"Designer"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var got Profile
	if err := json.Unmarshal(decode(t, rec).Data, &got); err != nil {
		t.Fatalf("decoding profile: %v", err)
	}
	if got.Featured {
		t.Error("featured should default to false")
	}
	if got.Rating != 0 || got.TotalOrders != 0 || got.TotalReviews != 0 {
		t.Errorf("counters not zeroed: %v %v %v", got.Rating, got.TotalOrders, got.TotalReviews)
	}
	if got.Skills == nil || len(got.Skills) != 0 {
		t.Errorf("skills = %v, want empty list", got.Skills)
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Error("createdAt should equal updatedAt at creation")
	}
}

func TestCreateProfileMissingEmail(t *testing.T) {
	fs := &fakeStore{}
	h := NewHandler(fs, zerolog.Nop())

	c, rec := newContext(t, http.MethodPost, "/seller-profile", `{"title":"Designer"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if fs.creates != 0 {
		t.Error("store reached despite missing userEmail")
	}
	if env := decode(t, rec); env.Message != "User email is required" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestCreateProfileDuplicateOwner(t *testing.T) {
	fs := &fakeStore{}
	h := NewHandler(fs, zerolog.Nop())

	c, _ := newContext(t, http.MethodPost, "/seller-profile", `{"userEmail":"s@x.com"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	c, rec := newContext(t, http.MethodPost, "/seller-profile", `{"userEmail":"s@x.com"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("second Create: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(fs.profiles) != 1 {
		t.Errorf("store has %d profiles, want exactly 1", len(fs.profiles))
	}
}

func TestGetProfileNotFound(t *testing.T) {
	h := NewHandler(&fakeStore{}, zerolog.Nop())

	c, rec := newContext(t, http.MethodGet, "/", "")
	c.SetParamNames("userEmail")
	c.SetParamValues("missing@x.com")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if env := decode(t, rec); env.Message != "Seller Profile not found for this user" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestUpdateProfile(t *testing.T) {
	created := time.Now().UTC().Add(-time.Hour)
	fs := &fakeStore{profiles: []Profile{{
		ID:        primitive.NewObjectID(),
		UserEmail: "s@x.com",
		CreatedAt: created,
		UpdatedAt: created,
	}}}
	h := NewHandler(fs, zerolog.Nop())

	c, rec := newContext(t, http.MethodPut, "/", `{"title":"Senior Designer"}`)
	c.SetParamNames("userEmail")
	c.SetParamValues("s@x.com")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
	got := fs.profiles[0]
	if got.Title == nil || *got.Title != "Senior Designer" {
		t.Errorf("title = %v", got.Title)
	}
	if !got.CreatedAt.Equal(created) {
		t.Error("createdAt changed on update")
	}
	if !got.UpdatedAt.After(created) {
		t.Error("updatedAt not refreshed")
	}
}

func TestTopProfilesOrder(t *testing.T) {
	fs := &fakeStore{profiles: []Profile{
		{ID: primitive.NewObjectID(), UserEmail: "low@x.com", Rating: 1.5},
		{ID: primitive.NewObjectID(), UserEmail: "high@x.com", Rating: 4.9},
		{ID: primitive.NewObjectID(), UserEmail: "mid@x.com", Rating: 3.2},
	}}
	h := NewHandler(fs, zerolog.Nop())

	c, rec := newContext(t, http.MethodGet, "/top-seller-profiles", "")
	if err := h.Top(c); err != nil {
		t.Fatalf("Top: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []Profile
	if err := json.Unmarshal(decode(t, rec).Data, &got); err != nil {
		t.Fatalf("decoding profiles: %v", err)
	}
	if len(got) != 3 || got[0].UserEmail != "high@x.com" {
		t.Errorf("unexpected ordering: %v", got)
	}
}
