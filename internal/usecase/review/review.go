package review

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/audit"
	"github.com/BruksfildServices01/recipe-nest/internal/clock"
	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	reviewdomain "github.com/BruksfildServices01/recipe-nest/internal/domain/review"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

var errReviewNotFound = httperr.NotFoundErr("review_not_found", "Review not found.")

func notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return errReviewNotFound
	}
	return err
}

// --------------------------------------------------
// Submit
// --------------------------------------------------

type SubmitReview struct {
	repo  reviewdomain.Repository
	clock clock.Clock
}

func NewSubmitReview(repo reviewdomain.Repository, clk clock.Clock) *SubmitReview {
	if clk == nil {
		clk = clock.System{}
	}
	return &SubmitReview{repo: repo, clock: clk}
}

// Execute stores a Pending review. actor is nil for anonymous callers.
func (uc *SubmitReview) Execute(
	ctx context.Context,
	actor *user.Actor,
	text string,
	ratingValue int,
) (*models.PublicReview, error) {

	text, err := reviewdomain.ValidateSubmission(text, ratingValue)
	if err != nil {
		return nil, err
	}

	rv := &models.PublicReview{
		ReviewText:  text,
		RatingValue: ratingValue,
		SubmittedAt: uc.clock.Now().Truncate(time.Microsecond),
		Status:      string(reviewdomain.InitialStatus()),
	}
	if actor != nil {
		id := actor.UserID
		rv.UserID = &id
	}

	if err := uc.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

type ListPublicReviews struct {
	repo reviewdomain.Repository
}

func NewListPublicReviews(repo reviewdomain.Repository) *ListPublicReviews {
	return &ListPublicReviews{repo: repo}
}

func (uc *ListPublicReviews) Execute(ctx context.Context) ([]models.PublicReview, error) {
	approved := reviewdomain.StatusApproved
	return uc.repo.List(ctx, &approved)
}

type ListReviews struct {
	repo reviewdomain.Repository
}

func NewListReviews(repo reviewdomain.Repository) *ListReviews {
	return &ListReviews{repo: repo}
}

// Execute returns every review, optionally restricted to one status.
func (uc *ListReviews) Execute(ctx context.Context, status *reviewdomain.Status) ([]models.PublicReview, error) {
	return uc.repo.List(ctx, status)
}

// --------------------------------------------------
// Moderation
// --------------------------------------------------

type SetReviewStatus struct {
	repo  reviewdomain.Repository
	audit *audit.Dispatcher
}

func NewSetReviewStatus(
	repo reviewdomain.Repository,
	audit *audit.Dispatcher,
) *SetReviewStatus {
	return &SetReviewStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetReviewStatus) Execute(
	ctx context.Context,
	actor user.Actor,
	id uint,
	status reviewdomain.Status,
) (*models.PublicReview, error) {

	rv, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	from := reviewdomain.Status(rv.Status)
	if err := reviewdomain.CanTransition(from, status); err != nil {
		return nil, err
	}
	if from == status {
		return rv, nil
	}

	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, notFound(err)
	}
	rv.Status = string(status)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionReviewStatusChanged,
		Entity:   "public_review",
		EntityID: &rv.ID,
		Metadata: map[string]string{
			"from": string(from),
			"to":   string(status),
		},
	})

	return rv, nil
}

type DeleteReview struct {
	repo  reviewdomain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReview(
	repo reviewdomain.Repository,
	audit *audit.Dispatcher,
) *DeleteReview {
	return &DeleteReview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReview) Execute(
	ctx context.Context,
	actor user.Actor,
	id uint,
) error {

	if err := uc.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionReviewDeleted,
		Entity:   "public_review",
		EntityID: &id,
	})
	return nil
}
