package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/dto"
)

const defaultTimeout = 15 * time.Second

// Client calls the RecipeNest API on behalf of a Session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

func NewClient(baseURL string, session *Session) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		session:    session,
	}
}

// WithHTTPClient swaps the transport, mostly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	cp := *c
	cp.httpClient = hc
	return &cp
}

func (c *Client) Session() *Session {
	return c.session
}

// --------- Requests ---------

type SignupParams struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Role      string  `json:"role"`
	RoleTitle *string `json:"roleTitle,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
}

type ProfileUpdate struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  *string `json:"password,omitempty"`
	RoleTitle *string `json:"roleTitle,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
}

type RecipeForm struct {
	Title        string
	Type         string
	Cuisine      string
	Description  string
	Ingredients  string
	Instructions string
}

func (f RecipeForm) fields() map[string]string {
	return map[string]string{
		"Title":        f.Title,
		"Type":         f.Type,
		"Cuisine":      f.Cuisine,
		"Description":  f.Description,
		"Ingredients":  f.Ingredients,
		"Instructions": f.Instructions,
	}
}

// Upload is a file attached to a multipart request.
type Upload struct {
	Filename string
	Body     io.Reader
}

type RecipeQuery struct {
	Type    string
	Cuisine string
	ChefID  uint
	Query   string
}

func (q RecipeQuery) encode() string {
	v := url.Values{}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	if q.Cuisine != "" {
		v.Set("cuisine", q.Cuisine)
	}
	if q.ChefID != 0 {
		v.Set("chefId", strconv.FormatUint(uint64(q.ChefID), 10))
	}
	if q.Query != "" {
		v.Set("q", q.Query)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

type AuditQuery struct {
	Action string
	Entity string
	From   string
	To     string
	Page   int
	Limit  int
}

// --------- Auth ---------

func (c *Client) Signup(ctx context.Context, p SignupParams) (dto.UserProfileDTO, error) {
	var out dto.UserProfileDTO
	err := c.call(ctx, http.MethodPost, "/api/auth/signup", p, &out, false)
	return out, err
}

// Login starts the session on success.
func (c *Client) Login(ctx context.Context, email, password string) (dto.LoginResponseDTO, error) {
	var out dto.LoginResponseDTO
	body := map[string]string{"email": email, "password": password}
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", body, &out, false); err != nil {
		return out, err
	}
	c.session.Start(out.Token, out.User.ID, user.Role(out.User.Role), out.User.FirstName)
	return out, nil
}

// --------- Profile ---------

func (c *Client) Me(ctx context.Context) (dto.UserProfileDTO, error) {
	var out dto.UserProfileDTO
	err := c.call(ctx, http.MethodGet, "/api/users/me", nil, &out, true)
	return out, err
}

func (c *Client) UpdateMe(ctx context.Context, p ProfileUpdate) (dto.UserProfileDTO, error) {
	var out dto.UserProfileDTO
	err := c.call(ctx, http.MethodPut, "/api/users/me", p, &out, true)
	return out, err
}

func (c *Client) UploadProfileImage(ctx context.Context, img Upload) (dto.ProfileImageDTO, error) {
	var out dto.ProfileImageDTO
	err := c.multipart(ctx, http.MethodPut, "/api/users/me/profile-image", nil, "image", &img, &out)
	return out, err
}

func (c *Client) Chefs(ctx context.Context) ([]dto.ChefSummaryDTO, error) {
	var out []dto.ChefSummaryDTO
	err := c.call(ctx, http.MethodGet, "/api/chefs", nil, &out, false)
	return out, err
}

// --------- Recipes ---------

func (c *Client) Recipes(ctx context.Context, q RecipeQuery) ([]dto.RecipeDTO, error) {
	var out []dto.RecipeDTO
	err := c.call(ctx, http.MethodGet, "/api/recipes"+q.encode(), nil, &out, c.session.Authenticated())
	return out, err
}

func (c *Client) MyRecipes(ctx context.Context) ([]dto.RecipeDTO, error) {
	var out []dto.RecipeDTO
	err := c.call(ctx, http.MethodGet, "/api/recipes/my-recipes", nil, &out, true)
	return out, err
}

func (c *Client) AllRecipes(ctx context.Context) ([]dto.RecipeDTO, error) {
	var out []dto.RecipeDTO
	err := c.call(ctx, http.MethodGet, "/api/recipes/all", nil, &out, true)
	return out, err
}

func (c *Client) MyStats(ctx context.Context) (dto.ChefStatsDTO, error) {
	var out dto.ChefStatsDTO
	err := c.call(ctx, http.MethodGet, "/api/recipes/my-stats", nil, &out, true)
	return out, err
}

func (c *Client) Recipe(ctx context.Context, id uint) (dto.RecipeDTO, error) {
	var out dto.RecipeDTO
	err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/recipes/%d", id), nil, &out, c.session.Authenticated())
	return out, err
}

// CreateRecipe sends a multipart form. image may be nil.
func (c *Client) CreateRecipe(ctx context.Context, f RecipeForm, image *Upload) (dto.RecipeDTO, error) {
	var out dto.RecipeDTO
	err := c.multipart(ctx, http.MethodPost, "/api/recipes", f.fields(), "Image", image, &out)
	return out, err
}

func (c *Client) UpdateRecipe(ctx context.Context, id uint, f RecipeForm) (dto.RecipeDTO, error) {
	var out dto.RecipeDTO
	err := c.multipart(ctx, http.MethodPut, fmt.Sprintf("/api/recipes/%d", id), f.fields(), "", nil, &out)
	return out, err
}

func (c *Client) DeleteRecipe(ctx context.Context, id uint) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/recipes/%d", id), nil, nil, true)
}

func (c *Client) Rate(ctx context.Context, recipeID uint, rating int) (dto.RatingResultDTO, error) {
	var out dto.RatingResultDTO
	body := map[string]any{"recipeId": recipeID, "rating": rating}
	err := c.call(ctx, http.MethodPost, "/api/ratings", body, &out, true)
	return out, err
}

// --------- Public reviews ---------

func (c *Client) SubmitReview(ctx context.Context, text string, rating int) (dto.PublicReviewDTO, error) {
	var out dto.PublicReviewDTO
	body := map[string]any{"reviewText": text, "ratingValue": rating}
	err := c.call(ctx, http.MethodPost, "/api/public-reviews", body, &out, c.session.Authenticated())
	return out, err
}

func (c *Client) PublicReviews(ctx context.Context) ([]dto.PublicReviewDTO, error) {
	var out []dto.PublicReviewDTO
	err := c.call(ctx, http.MethodGet, "/api/public-reviews", nil, &out, false)
	return out, err
}

// ManageReviews lists every review; status may be empty.
func (c *Client) ManageReviews(ctx context.Context, status string) ([]dto.PublicReviewDTO, error) {
	path := "/api/public-reviews/manage"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out []dto.PublicReviewDTO
	err := c.call(ctx, http.MethodGet, path, nil, &out, true)
	return out, err
}

func (c *Client) SetReviewStatus(ctx context.Context, id uint, status string) (dto.PublicReviewDTO, error) {
	var out dto.PublicReviewDTO
	err := c.call(ctx, http.MethodPut, fmt.Sprintf("/api/public-reviews/%d/status", id), status, &out, true)
	return out, err
}

func (c *Client) DeleteReview(ctx context.Context, id uint) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/public-reviews/%d", id), nil, nil, true)
}

func (c *Client) AuditLogs(ctx context.Context, q AuditQuery) (dto.AuditLogPageDTO, error) {
	v := url.Values{}
	for k, val := range map[string]string{"action": q.Action, "entity": q.Entity, "from": q.From, "to": q.To} {
		if val != "" {
			v.Set(k, val)
		}
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	path := "/api/audit-logs"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}

	var out dto.AuditLogPageDTO
	err := c.call(ctx, http.MethodGet, path, nil, &out, true)
	return out, err
}

// --------- Transport ---------

// call sends body as JSON. authed requests carry the session token and
// end the session on 401/403.
func (c *Client) call(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out, authed)
}

func (c *Client) multipart(
	ctx context.Context,
	method, path string,
	fields map[string]string,
	fileField string,
	file *Upload,
	out any,
) error {

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := writer.WriteField(k, v); err != nil {
			return err
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(fileField, file.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file.Body); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, out, true)
}

func (c *Client) do(req *http.Request, out any, authed bool) error {
	sentToken := false
	if authed {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			sentToken = true
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if sentToken && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			c.session.Logout()
		}
		return parseError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
