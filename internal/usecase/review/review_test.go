package review

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/audit"
	"github.com/BruksfildServices01/recipe-nest/internal/clock"
	reviewdomain "github.com/BruksfildServices01/recipe-nest/internal/domain/review"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/infra/memory"
)

var admin = user.Actor{UserID: 1, Role: user.RoleAdmin}

func TestSubmitAlwaysPending(t *testing.T) {
	store := memory.NewStore()
	uc := NewSubmitReview(store.Reviews(), nil)
	ctx := context.Background()

	anon, err := uc.Execute(ctx, nil, "  Wonderful site!  ", 5)
	if err != nil {
		t.Fatal(err)
	}
	lover := &user.Actor{UserID: 7, Role: user.RoleFoodLover}
	signed, err := uc.Execute(ctx, lover, "Love the recipes", 4)
	if err != nil {
		t.Fatal(err)
	}
	adminReview, err := uc.Execute(ctx, &admin, "Admin says hi", 3)
	if err != nil {
		t.Fatal(err)
	}

	for _, rv := range []string{anon.Status, signed.Status, adminReview.Status} {
		if rv != string(reviewdomain.StatusPending) {
			t.Fatalf("status = %q, want Pending", rv)
		}
	}
	if anon.ReviewText != "Wonderful site!" || anon.UserID != nil {
		t.Fatalf("unexpected anonymous review: %+v", anon)
	}
	if signed.UserID == nil || *signed.UserID != 7 {
		t.Fatal("authenticated reviews are attributed")
	}

	if _, err := uc.Execute(ctx, nil, "abc", 5); !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("short review: %v", err)
	}
}

func TestModerationVisibility(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	submit := NewSubmitReview(store.Reviews(), clock.Func(func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Hour)
	}))

	first, _ := submit.Execute(ctx, nil, "First review", 5)
	second, _ := submit.Execute(ctx, nil, "Second review", 4)

	dispatcher := audit.NewDispatcher(audit.New(store.AuditLogs()))
	setStatus := NewSetReviewStatus(store.Reviews(), dispatcher)
	public := NewListPublicReviews(store.Reviews())

	if got, _ := public.Execute(ctx); len(got) != 0 {
		t.Fatalf("pending reviews must not be public: %+v", got)
	}

	if _, err := setStatus.Execute(ctx, admin, first.ID, reviewdomain.StatusApproved); err != nil {
		t.Fatal(err)
	}
	if _, err := setStatus.Execute(ctx, admin, second.ID, reviewdomain.StatusApproved); err != nil {
		t.Fatal(err)
	}
	got, _ := public.Execute(ctx)
	if len(got) != 2 || got[0].ID != second.ID {
		t.Fatalf("expected both approved, newest first: %+v", got)
	}

	if _, err := setStatus.Execute(ctx, admin, first.ID, reviewdomain.StatusRejected); err != nil {
		t.Fatal(err)
	}
	got, _ = public.Execute(ctx)
	if len(got) != 1 || got[0].ID != second.ID {
		t.Fatalf("rejected review still public: %+v", got)
	}

	// Same status again is a successful no-op.
	if rv, err := setStatus.Execute(ctx, admin, first.ID, reviewdomain.StatusRejected); err != nil || rv.Status != "Rejected" {
		t.Fatalf("no-op transition: %v %+v", err, rv)
	}

	all, _ := NewListReviews(store.Reviews()).Execute(ctx, nil)
	if len(all) != 2 {
		t.Fatalf("manage listing must include every status: %d", len(all))
	}

	dispatcher.Close()
	_, total, _ := store.AuditLogs().List(ctx, audit.Filter{Page: 1, Limit: 50, Action: audit.ActionReviewStatusChanged})
	if total != 3 {
		t.Fatalf("expected 3 status audit rows, got %d", total)
	}
}

func TestDeleteReview(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	rv, _ := NewSubmitReview(store.Reviews(), nil).Execute(ctx, nil, "Delete me please", 2)

	uc := NewDeleteReview(store.Reviews(), nil)
	if err := uc.Execute(ctx, admin, rv.ID); err != nil {
		t.Fatal(err)
	}
	if err := uc.Execute(ctx, admin, rv.ID); !httperr.IsBusiness(err, "review_not_found") {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := NewSetReviewStatus(store.Reviews(), nil).Execute(ctx, admin, rv.ID, reviewdomain.StatusApproved); !httperr.IsBusiness(err, "review_not_found") {
		t.Fatalf("status on deleted review: %v", err)
	}
}
