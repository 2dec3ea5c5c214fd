package handlers

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	reviewdomain "github.com/BruksfildServices01/recipe-nest/internal/domain/review"
	"github.com/BruksfildServices01/recipe-nest/internal/dto"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/httpresp"
	ucReview "github.com/BruksfildServices01/recipe-nest/internal/usecase/review"
)

const (
	reviewNotFound   = "review_not_found"
	maxStatusBodyLen = 1 << 10
)

type PublicReviewHandler struct {
	submit    *ucReview.SubmitReview
	public    *ucReview.ListPublicReviews
	all       *ucReview.ListReviews
	setStatus *ucReview.SetReviewStatus
	remove    *ucReview.DeleteReview
}

func NewPublicReviewHandler(
	submit *ucReview.SubmitReview,
	public *ucReview.ListPublicReviews,
	all *ucReview.ListReviews,
	setStatus *ucReview.SetReviewStatus,
	remove *ucReview.DeleteReview,
) *PublicReviewHandler {
	return &PublicReviewHandler{
		submit:    submit,
		public:    public,
		all:       all,
		setStatus: setStatus,
		remove:    remove,
	}
}

type SubmitReviewRequest struct {
	ReviewText  string `json:"reviewText" binding:"required"`
	RatingValue int    `json:"ratingValue" binding:"required,min=1,max=5"`
}

func (h *PublicReviewHandler) Submit(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	rv, err := h.submit.Execute(c.Request.Context(), optionalActor(c), req.ReviewText, req.RatingValue)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.NewPublicReview(rv))
}

func (h *PublicReviewHandler) ListApproved(c *gin.Context) {
	rows, err := h.public.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewPublicReviews(rows))
}

// Manage lists every review, optionally narrowed by ?status=.
func (h *PublicReviewHandler) Manage(c *gin.Context) {
	var status *reviewdomain.Status
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		s, ok := reviewdomain.ParseStatusName(raw)
		if !ok {
			httperr.Respond(c, httperr.Validation("invalid_status", "Unknown review status.").
				WithField("status", "must be Pending, Approved or Rejected"))
			return
		}
		status = &s
	}

	rows, err := h.all.Execute(c.Request.Context(), status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewPublicReviews(rows))
}

// SetStatus reads the raw body: a number, a name, {"status": ...} or plain text.
func (h *PublicReviewHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id", reviewNotFound)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxStatusBodyLen))
	if err != nil {
		httperr.Respond(c, httperr.Validation("invalid_request", "Request body is invalid."))
		return
	}

	status, err := reviewdomain.ParseStatusBody(body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	rv, err := h.setStatus.Execute(c.Request.Context(), currentActor(c), id, status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewPublicReview(rv))
}

func (h *PublicReviewHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", reviewNotFound)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), currentActor(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
