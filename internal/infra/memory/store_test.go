package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/review"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

func newChef(t *testing.T, s *Store, name, email string) models.User {
	t.Helper()
	u := models.User{Name: name, Email: email, Role: string(user.RoleChef)}
	if err := s.Users().Create(context.Background(), &u); err != nil {
		t.Fatalf("create chef: %v", err)
	}
	return u
}

func TestUserEmailUniqueCaseInsensitive(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	newChef(t, s, "Ana", "ana@example.com")

	dup := models.User{Name: "Other", Email: "ANA@example.com"}
	if err := s.Users().Create(ctx, &dup); !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected duplicate, got %v", err)
	}

	got, err := s.Users().GetByEmail(ctx, "Ana@Example.com")
	if err != nil || got.Name != "Ana" {
		t.Fatalf("lookup by email failed: %v %+v", err, got)
	}

	taken, _ := s.Users().EmailTaken(ctx, "ana@example.com", got.ID)
	if taken {
		t.Fatal("own email must not count as taken")
	}
}

func TestRecipeDeleteCascadesRatings(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	chef := newChef(t, s, "Ana", "ana@example.com")

	rec := models.Recipe{Title: "Soup", Description: "Hot", ChefID: chef.ID}
	if err := s.Recipes().Create(ctx, &rec); err != nil {
		t.Fatal(err)
	}
	for _, v := range []int{5, 3} {
		if err := s.Ratings().Create(ctx, &models.Rating{RecipeID: rec.ID, UserID: chef.ID, RatingValue: v}); err != nil {
			t.Fatal(err)
		}
	}

	l, err := s.Recipes().GetListing(ctx, rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if l.AverageRating != 4 || l.RatingCount != 2 || l.ChefName != "Ana" {
		t.Fatalf("unexpected listing: %+v", l)
	}

	if err := s.Recipes().Delete(ctx, rec.ID); err != nil {
		t.Fatal(err)
	}
	if sum, _ := s.Ratings().Summary(ctx, rec.ID); sum.Count != 0 {
		t.Fatalf("ratings not cascaded: %+v", sum)
	}
	if err := s.Recipes().Delete(ctx, rec.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestRecipeListNewestFirstAndFiltered(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	})

	chef := newChef(t, s, "Ana", "ana@example.com")
	dessert := "Dessert"
	for _, title := range []string{"First", "Second", "Third"} {
		rec := models.Recipe{Title: title, Description: "d", ChefID: chef.ID}
		if title == "Second" {
			rec.Type = &dessert
		}
		if err := s.Recipes().Create(ctx, &rec); err != nil {
			t.Fatal(err)
		}
	}

	all, _ := s.Recipes().List(ctx, recipe.Filter{})
	if len(all) != 3 || all[0].Recipe.Title != "Third" || all[2].Recipe.Title != "First" {
		t.Fatalf("unexpected order: %+v", all)
	}

	filtered, _ := s.Recipes().List(ctx, recipe.Filter{Type: "dessert"})
	if len(filtered) != 1 || filtered[0].Recipe.Title != "Second" {
		t.Fatalf("unexpected filter result: %+v", filtered)
	}
}

func TestIncrementViews(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	chef := newChef(t, s, "Ana", "ana@example.com")
	rec := models.Recipe{Title: "Soup", Description: "Hot", ChefID: chef.ID}
	_ = s.Recipes().Create(ctx, &rec)

	_ = s.Recipes().IncrementViews(ctx, rec.ID)
	_ = s.Recipes().IncrementViews(ctx, rec.ID)
	got, _ := s.Recipes().Get(ctx, rec.ID)
	if got.ViewCount != 2 {
		t.Fatalf("view count = %d", got.ViewCount)
	}
	if err := s.Recipes().IncrementViews(ctx, 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReviewListByStatus(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	for _, st := range []review.Status{review.StatusPending, review.StatusApproved, review.StatusApproved} {
		rv := models.PublicReview{ReviewText: "Lovely", RatingValue: 5, Status: string(st)}
		_ = s.Reviews().Create(ctx, &rv)
	}

	approved := review.StatusApproved
	got, _ := s.Reviews().List(ctx, &approved)
	if len(got) != 2 {
		t.Fatalf("expected 2 approved, got %d", len(got))
	}
	all, _ := s.Reviews().List(ctx, nil)
	if len(all) != 3 {
		t.Fatalf("expected 3 total, got %d", len(all))
	}
}
