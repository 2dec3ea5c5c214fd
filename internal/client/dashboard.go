package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/dto"
)

type Section string

const (
	SectionHome          Section = "home"
	SectionMyRecipes     Section = "my-recipes"
	SectionAddRecipe     Section = "add-recipe"
	SectionViewAll       Section = "view-all"
	SectionManageProfile Section = "manage-profile"
	SectionRecipes       Section = "recipes"
	SectionProfile       Section = "profile"
	SectionReviews       Section = "reviews"
)

var (
	ErrNoDashboard    = errors.New("no dashboard for session role")
	ErrUnknownSection = errors.New("unknown dashboard section")
)

// Dashboard is the signed-in home of one role.
type Dashboard interface {
	Role() user.Role
	Sections() []Section
	// Load switches to section and fetches what it shows.
	Load(ctx context.Context, section Section) error
	Active() Section
	Logout()
}

// NewDashboard picks the variant matching the session role.
func NewDashboard(session *Session, c *Client) (Dashboard, error) {
	switch session.Role() {
	case user.RoleChef:
		return newChefDashboard(session, c, DefaultPollInterval), nil
	case user.RoleFoodLover:
		return &FoodLoverDashboard{dashboardBase: dashboardBase{session: session, client: c}}, nil
	case user.RoleAdmin:
		return &AdminDashboard{dashboardBase: dashboardBase{session: session, client: c}}, nil
	default:
		return nil, ErrNoDashboard
	}
}

type dashboardBase struct {
	session *Session
	client  *Client

	mu      sync.RWMutex
	active  Section
	profile dto.UserProfileDTO
}

func (b *dashboardBase) Active() Section {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.active
}

func (b *dashboardBase) Profile() dto.UserProfileDTO {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.profile
}

func (b *dashboardBase) setActive(s Section) {
	b.mu.Lock()
	b.active = s
	b.mu.Unlock()
}

func (b *dashboardBase) loadProfile(ctx context.Context) error {
	p, err := b.client.Me(ctx)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.profile = p
	b.mu.Unlock()
	return nil
}

func (b *dashboardBase) Logout() {
	b.session.Logout()
}

func hasSection(all []Section, s Section) bool {
	for _, known := range all {
		if known == s {
			return true
		}
	}
	return false
}

func unknownSection(s Section) error {
	return fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// ======================================================
// CHEF
// ======================================================

type ChefDashboard struct {
	dashboardBase

	poller    *Poller
	myRecipes []dto.RecipeDTO
	all       []dto.RecipeDTO
	stats     dto.ChefStatsDTO
}

func newChefDashboard(session *Session, c *Client, interval time.Duration) *ChefDashboard {
	d := &ChefDashboard{dashboardBase: dashboardBase{session: session, client: c}}
	d.poller = NewPoller(interval, d.pollMine)
	return d
}

func (d *ChefDashboard) Role() user.Role { return user.RoleChef }

func (d *ChefDashboard) Sections() []Section {
	return []Section{SectionHome, SectionMyRecipes, SectionAddRecipe, SectionViewAll, SectionManageProfile}
}

// Load polls the chef's own recipes while home or my-recipes is shown.
func (d *ChefDashboard) Load(ctx context.Context, section Section) error {
	if !hasSection(d.Sections(), section) {
		return unknownSection(section)
	}
	d.poller.Stop()
	d.setActive(section)

	var err error
	switch section {
	case SectionHome:
		if err = d.loadProfile(ctx); err == nil {
			if err = d.refreshMine(ctx); err == nil {
				err = d.loadStats(ctx)
			}
		}
	case SectionMyRecipes:
		err = d.refreshMine(ctx)
	case SectionViewAll:
		err = d.loadAll(ctx)
	case SectionManageProfile:
		err = d.loadProfile(ctx)
	}
	if err != nil {
		return err
	}

	if section == SectionHome || section == SectionMyRecipes {
		d.poller.Start(ctx)
	}
	return nil
}

// pollMine stops the loop once the session has ended, whether a poll
// itself was rejected or the user signed out elsewhere.
func (d *ChefDashboard) pollMine(ctx context.Context) error {
	if !d.session.Authenticated() {
		return ErrStopPolling
	}
	err := d.refreshMine(ctx)
	if err != nil && !d.session.Authenticated() {
		return ErrStopPolling
	}
	return err
}

func (d *ChefDashboard) refreshMine(ctx context.Context) error {
	rows, err := d.client.MyRecipes(ctx)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.myRecipes = rows
	d.mu.Unlock()
	return nil
}

func (d *ChefDashboard) loadStats(ctx context.Context) error {
	s, err := d.client.MyStats(ctx)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.stats = s
	d.mu.Unlock()
	return nil
}

func (d *ChefDashboard) loadAll(ctx context.Context) error {
	rows, err := d.client.Recipes(ctx, RecipeQuery{})
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.all = rows
	d.mu.Unlock()
	return nil
}

func (d *ChefDashboard) MyRecipes() []dto.RecipeDTO {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.myRecipes
}

func (d *ChefDashboard) AllRecipes() []dto.RecipeDTO {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.all
}

func (d *ChefDashboard) Stats() dto.ChefStatsDTO {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stats
}

func (d *ChefDashboard) Polling() bool {
	return d.poller.Running()
}

// Close stops background refreshes.
func (d *ChefDashboard) Close() {
	d.poller.Stop()
}

func (d *ChefDashboard) Logout() {
	d.poller.Stop()
	d.dashboardBase.Logout()
}

// ======================================================
// FOOD LOVER
// ======================================================

type FoodLoverDashboard struct {
	dashboardBase

	recipes    []dto.RecipeDTO
	reviews    []dto.PublicReviewDTO
	recipeType string
}

func (d *FoodLoverDashboard) Role() user.Role { return user.RoleFoodLover }

// SetRecipeType narrows the recipes section; empty shows all.
func (d *FoodLoverDashboard) SetRecipeType(t string) {
	d.mu.Lock()
	d.recipeType = t
	d.mu.Unlock()
}

func (d *FoodLoverDashboard) Sections() []Section {
	return []Section{SectionHome, SectionRecipes, SectionProfile}
}

func (d *FoodLoverDashboard) Load(ctx context.Context, section Section) error {
	if !hasSection(d.Sections(), section) {
		return unknownSection(section)
	}
	d.setActive(section)

	switch section {
	case SectionHome:
		if err := d.loadProfile(ctx); err != nil {
			return err
		}
		reviews, err := d.client.PublicReviews(ctx)
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.reviews = reviews
		d.mu.Unlock()
	case SectionRecipes:
		d.mu.RLock()
		q := RecipeQuery{Type: d.recipeType}
		d.mu.RUnlock()
		rows, err := d.client.Recipes(ctx, q)
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.recipes = rows
		d.mu.Unlock()
	case SectionProfile:
		return d.loadProfile(ctx)
	}
	return nil
}

func (d *FoodLoverDashboard) Recipes() []dto.RecipeDTO {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.recipes
}

func (d *FoodLoverDashboard) Reviews() []dto.PublicReviewDTO {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.reviews
}

// ======================================================
// ADMIN
// ======================================================

type AdminDashboard struct {
	dashboardBase

	recipes []dto.RecipeDTO
	reviews []dto.PublicReviewDTO
}

func (d *AdminDashboard) Role() user.Role { return user.RoleAdmin }

func (d *AdminDashboard) Sections() []Section {
	return []Section{SectionHome, SectionRecipes, SectionReviews}
}

func (d *AdminDashboard) Load(ctx context.Context, section Section) error {
	if !hasSection(d.Sections(), section) {
		return unknownSection(section)
	}
	d.setActive(section)

	switch section {
	case SectionHome:
		return d.loadProfile(ctx)
	case SectionRecipes:
		rows, err := d.client.AllRecipes(ctx)
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.recipes = rows
		d.mu.Unlock()
	case SectionReviews:
		rows, err := d.client.ManageReviews(ctx, "")
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.reviews = rows
		d.mu.Unlock()
	}
	return nil
}

func (d *AdminDashboard) Recipes() []dto.RecipeDTO {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.recipes
}

func (d *AdminDashboard) Reviews() []dto.PublicReviewDTO {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.reviews
}
