package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
)

func TestNewDashboardPicksVariant(t *testing.T) {
	cases := []struct {
		role     user.Role
		sections int
	}{
		{user.RoleChef, 5},
		{user.RoleFoodLover, 3},
		{user.RoleAdmin, 3},
	}
	for _, tc := range cases {
		s := NewSession(nil)
		s.Start("tok", 1, tc.role, "x")
		d, err := NewDashboard(s, NewClient("http://example.invalid", s))
		if err != nil {
			t.Fatalf("%s: %v", tc.role, err)
		}
		if d.Role() != tc.role || len(d.Sections()) != tc.sections {
			t.Fatalf("%s: role=%s sections=%v", tc.role, d.Role(), d.Sections())
		}
	}

	if _, err := NewDashboard(NewSession(nil), nil); !errors.Is(err, ErrNoDashboard) {
		t.Fatalf("anonymous session: %v", err)
	}
}

func TestChefDashboardPolling(t *testing.T) {
	srv := newAPIServer(t)
	ctx := context.Background()
	chef, _ := signedIn(t, srv.URL, "Gina Cook", "gina@example.com", user.RoleChef)

	if _, err := chef.CreateRecipe(ctx, RecipeForm{Title: "Bagel", Description: "Boiled bread"}, nil); err != nil {
		t.Fatal(err)
	}

	d := newChefDashboard(chef.Session(), chef, 20*time.Millisecond)
	t.Cleanup(d.Close)

	if err := d.Load(ctx, SectionHome); err != nil {
		t.Fatalf("load home: %v", err)
	}
	if len(d.MyRecipes()) != 1 || d.Stats().TotalRecipes != 1 || d.Profile().Name != "Gina Cook" {
		t.Fatalf("home data: %d recipes, stats %+v", len(d.MyRecipes()), d.Stats())
	}
	if !d.Polling() {
		t.Fatal("home should poll")
	}

	if _, err := chef.CreateRecipe(ctx, RecipeForm{Title: "Pretzel", Description: "Twisted bread"}, nil); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for len(d.MyRecipes()) != 2 {
		if time.Now().After(deadline) {
			t.Fatalf("poll did not refresh: %d recipes", len(d.MyRecipes()))
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := d.Load(ctx, SectionViewAll); err != nil {
		t.Fatalf("load view-all: %v", err)
	}
	if d.Polling() || d.Active() != SectionViewAll || len(d.AllRecipes()) != 2 {
		t.Fatalf("view-all: polling=%v active=%s all=%d", d.Polling(), d.Active(), len(d.AllRecipes()))
	}

	if err := d.Load(ctx, SectionReviews); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("unknown section: %v", err)
	}
}

func TestAdminAndFoodLoverDashboards(t *testing.T) {
	srv := newAPIServer(t)
	ctx := context.Background()
	chef, _ := signedIn(t, srv.URL, "Gina Cook", "gina@example.com", user.RoleChef)
	if _, err := chef.CreateRecipe(ctx, RecipeForm{Title: "Cannoli", Description: "Sweet", Type: "Dessert"}, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := chef.CreateRecipe(ctx, RecipeForm{Title: "Ragu", Description: "Slow sauce", Type: "Main"}, nil); err != nil {
		t.Fatal(err)
	}

	admin, _ := signedIn(t, srv.URL, "Ada Admin", "ada@example.com", user.RoleAdmin)
	ad, err := NewDashboard(admin.Session(), admin)
	if err != nil {
		t.Fatal(err)
	}
	if err := ad.Load(ctx, SectionRecipes); err != nil {
		t.Fatal(err)
	}
	if got := len(ad.(*AdminDashboard).Recipes()); got != 2 {
		t.Fatalf("admin recipes: %d", got)
	}

	lover, _ := signedIn(t, srv.URL, "Fern Lover", "fern@example.com", user.RoleFoodLover)
	fd := &FoodLoverDashboard{dashboardBase: dashboardBase{session: lover.Session(), client: lover}}
	fd.SetRecipeType("dessert")
	if err := fd.Load(ctx, SectionRecipes); err != nil {
		t.Fatal(err)
	}
	if got := fd.Recipes(); len(got) != 1 || got[0].Title != "Cannoli" {
		t.Fatalf("filtered recipes: %+v", got)
	}

	fd.Logout()
	if lover.Session().Authenticated() {
		t.Fatal("logout did not clear session")
	}
}

func TestPollerKeepsRunningAfterErrors(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("boom")
	})

	p.Start(context.Background())
	deadline := time.Now().Add(time.Second)
	for calls.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("only %d calls", calls.Load())
		}
		time.Sleep(time.Millisecond)
	}
	p.Stop()
	p.Stop()

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != after {
		t.Fatal("poller kept running after Stop")
	}
	if p.Running() {
		t.Fatal("poller reports running")
	}
}

func TestPollerStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPoller(time.Millisecond, func(context.Context) error { return nil })
	p.Start(ctx)
	cancel()

	deadline := time.Now().Add(time.Second)
	for p.Running() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if p.Running() {
		t.Fatal("poller still running after context cancel")
	}
	p.Stop()
}

// revocableAPI fronts the real API and answers 401 once revoked is set,
// counting every request that arrives after that.
func revocableAPI(t *testing.T) (*httptest.Server, *atomic.Bool, *atomic.Int32) {
	t.Helper()
	api := newAPIServer(t)

	var revoked atomic.Bool
	var after atomic.Int32
	front := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if revoked.Load() {
			after.Add(1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error_code":"invalid_token","message":"Token expired."}`))
			return
		}
		api.Config.Handler.ServeHTTP(w, r)
	}))
	t.Cleanup(front.Close)
	return front, &revoked, &after
}

func waitNotPolling(t *testing.T, d *ChefDashboard) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for d.Polling() {
		if time.Now().After(deadline) {
			t.Fatal("poller still running after logout")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestChefDashboardStopsPollingOnRejectedToken(t *testing.T) {
	front, revoked, after := revocableAPI(t)
	chef, rec := signedIn(t, front.URL, "Gina Cook", "gina@example.com", user.RoleChef)

	d := newChefDashboard(chef.Session(), chef, 20*time.Millisecond)
	t.Cleanup(d.Close)
	if err := d.Load(context.Background(), SectionMyRecipes); err != nil {
		t.Fatal(err)
	}

	revoked.Store(true)
	waitNotPolling(t, d)

	if chef.Session().Authenticated() {
		t.Fatal("401 during a poll must end the session")
	}
	seen := after.Load()
	time.Sleep(100 * time.Millisecond)
	if got := after.Load(); got != seen || got != 1 {
		t.Fatalf("requests after revocation: first %d then %d, want 1", seen, got)
	}
	if got := rec.list(); len(got) != 1 || got[0] != LoginPath {
		t.Fatalf("redirects: %v", got)
	}
}

func TestChefDashboardStopsPollingOnSignOutElsewhere(t *testing.T) {
	front, revoked, after := revocableAPI(t)
	chef, _ := signedIn(t, front.URL, "Gina Cook", "gina@example.com", user.RoleChef)

	d := newChefDashboard(chef.Session(), chef, 20*time.Millisecond)
	t.Cleanup(d.Close)
	if err := d.Load(context.Background(), SectionHome); err != nil {
		t.Fatal(err)
	}

	chef.Session().Logout()
	waitNotPolling(t, d)

	revoked.Store(true)
	time.Sleep(60 * time.Millisecond)
	if got := after.Load(); got != 0 {
		t.Fatalf("%d requests sent after sign-out", got)
	}
}

func TestPollerStopsOnSentinel(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return ErrStopPolling
	})
	p.Start(context.Background())

	deadline := time.Now().Add(time.Second)
	for p.Running() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if p.Running() || calls.Load() != 1 {
		t.Fatalf("running=%v calls=%d", p.Running(), calls.Load())
	}
	p.Stop()
}

func TestPollerConcurrentStartKeepsOneLoop(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(2*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Start(context.Background())
		}()
	}
	wg.Wait()
	p.Stop()

	stopped := calls.Load()
	time.Sleep(30 * time.Millisecond)
	if got := calls.Load(); got != stopped {
		t.Fatalf("a replaced loop kept running: %d calls after Stop", got-stopped)
	}
}
