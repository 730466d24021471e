package ez

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"autoshop/internal/domain"
	"autoshop/internal/service"
	resp "autoshop/internal/transport/http/response"
)

type thing struct {
	ID   uint
	Name string
}

type thingInput struct {
	Name string `form:"name"`
}

type store struct {
	items map[uint]*thing
	next  uint
}

func (s *store) create(_ context.Context, _ *domain.User, in thingInput) (*thing, error) {
	if in.Name == "" {
		return nil, service.Validation("Name is required")
	}
	s.next++
	t := &thing{ID: s.next, Name: in.Name}
	s.items[t.ID] = t
	return t, nil
}

func (s *store) get(_ context.Context, _ *domain.User, id uint) (*thing, error) {
	t, ok := s.items[id]
	if !ok {
		return nil, service.NotFound("Thing not found")
	}
	return t, nil
}

func (s *store) update(ctx context.Context, u *domain.User, id uint, in thingInput) (*thing, error) {
	t, err := s.get(ctx, u, id)
	if err != nil {
		return nil, err
	}
	t.Name = in.Name
	return t, nil
}

func (s *store) delete(_ context.Context, _ *domain.User, id uint) error {
	if _, ok := s.items[id]; !ok {
		return service.NotFound("Thing not found")
	}
	delete(s.items, id)
	return nil
}

func newEngine(s *store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("things.html").Parse(`{{range .Items}}{{.Name}};{{end}}`)))
	Crud(CrudConfig[thing, thingInput]{
		Group:  &r.RouterGroup,
		Name:   "thing",
		Title:  "Thing",
		Log:    zap.NewNop(),
		List:   func(context.Context, *domain.User) ([]thing, error) { return list(s), nil },
		Get:    s.get,
		Create: s.create,
		Update: s.update,
		Delete: s.delete,
	})
	return r
}

func list(s *store) []thing {
	out := make([]thing, 0, len(s.items))
	for i := uint(1); i <= s.next; i++ {
		if t, ok := s.items[i]; ok {
			out = append(out, *t)
		}
	}
	return out
}

func post(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func flashOf(w *httptest.ResponseRecorder) string {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "flash" {
			v, _ := url.QueryUnescape(ck.Value)
			return v
		}
	}
	return ""
}

func TestCrud_CreateUpdateDelete(t *testing.T) {
	s := &store{items: map[uint]*thing{}}
	r := newEngine(s)

	w := post(r, "/add_thing", url.Values{"name": {"wrench"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/things", w.Header().Get("Location"))
	assert.Equal(t, resp.FlashSuccess+"|Thing added successfully", flashOf(w))

	w = post(r, "/edit_thing/1", url.Values{"name": {"spanner"}})
	assert.Equal(t, "/things", w.Header().Get("Location"))
	assert.Equal(t, "spanner", s.items[1].Name)

	w = post(r, "/delete_thing/1", nil)
	assert.Equal(t, "/things", w.Header().Get("Location"))
	assert.Empty(t, s.items)
}

func TestCrud_ValidationRedirectsBack(t *testing.T) {
	s := &store{items: map[uint]*thing{}}
	r := newEngine(s)

	w := post(r, "/add_thing", url.Values{"name": {""}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/add_thing", w.Header().Get("Location"))
	assert.Equal(t, resp.FlashError+"|Name is required", flashOf(w))
	assert.Empty(t, s.items)
}

func TestCrud_MissingGoesToList(t *testing.T) {
	s := &store{items: map[uint]*thing{}}
	r := newEngine(s)

	for _, path := range []string{"/edit_thing/9", "/delete_thing/9", "/delete_thing/abc"} {
		w := post(r, path, url.Values{"name": {"x"}})
		assert.Equal(t, "/things", w.Header().Get("Location"), path)
	}
}

func TestCrud_ListRenders(t *testing.T) {
	s := &store{items: map[uint]*thing{1: {ID: 1, Name: "a"}, 2: {ID: 2, Name: "b"}}, next: 2}
	r := newEngine(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a;b;", w.Body.String())
}

func TestCrud_DeleteIsPostOnly(t *testing.T) {
	s := &store{items: map[uint]*thing{1: {ID: 1, Name: "a"}}, next: 1}
	r := newEngine(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/delete_thing/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, s.items, 1)
}
