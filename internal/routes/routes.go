package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/recipe-nest/internal/audit"
	"github.com/BruksfildServices01/recipe-nest/internal/auth"
	"github.com/BruksfildServices01/recipe-nest/internal/clock"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/rating"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/review"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/handlers"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/middleware"
	"github.com/BruksfildServices01/recipe-nest/internal/ratelimit"
	ucAuditLog "github.com/BruksfildServices01/recipe-nest/internal/usecase/auditlog"
	ucAuth "github.com/BruksfildServices01/recipe-nest/internal/usecase/auth"
	ucProfile "github.com/BruksfildServices01/recipe-nest/internal/usecase/profile"
	ucRating "github.com/BruksfildServices01/recipe-nest/internal/usecase/rating"
	ucRecipe "github.com/BruksfildServices01/recipe-nest/internal/usecase/recipe"
	ucReview "github.com/BruksfildServices01/recipe-nest/internal/usecase/review"
	"github.com/BruksfildServices01/recipe-nest/internal/usecase/upload"
	"github.com/BruksfildServices01/recipe-nest/internal/validators"
)

// Dependencies are the singletons the API is built from.
type Dependencies struct {
	Users     user.Repository
	Recipes   recipe.Repository
	Ratings   rating.Repository
	Reviews   review.Repository
	AuditLogs audit.Reader

	Audit    *audit.Dispatcher
	Tokens   *auth.TokenService
	Uploader *upload.Uploader
	Emails   validators.DomainChecker
	Limiter  ratelimit.Limiter
	Clock    clock.Clock

	CORSOrigins    []string
	MaxUploadBytes int64
	// UploadDir is served under /uploads when set.
	UploadDir string
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {

	httperr.RegisterJSONTagNames()

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLog(nil),
		middleware.SecurityHeaders(),
		middleware.CORSMiddleware(deps.CORSOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.UploadDir != "" {
		r.Static("/uploads", deps.UploadDir)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	signupUC := ucAuth.NewSignup(deps.Users, deps.Emails)
	loginUC := ucAuth.NewLogin(deps.Users, deps.Tokens)

	getProfileUC := ucProfile.NewGetProfile(deps.Users)
	updateProfileUC := ucProfile.NewUpdateProfile(deps.Users)
	profileImageUC := ucProfile.NewUpdateProfileImage(deps.Users, deps.Uploader, deps.Audit)
	listChefsUC := ucProfile.NewListChefs(deps.Users)

	listRecipesUC := ucRecipe.NewListRecipes(deps.Recipes)
	chefStatsUC := ucRecipe.NewChefStats(deps.Recipes)
	getRecipeUC := ucRecipe.NewGetRecipe(deps.Recipes)
	createRecipeUC := ucRecipe.NewCreateRecipe(deps.Recipes, deps.Uploader)
	updateRecipeUC := ucRecipe.NewUpdateRecipe(deps.Recipes)
	deleteRecipeUC := ucRecipe.NewDeleteRecipe(deps.Recipes, deps.Uploader, deps.Audit)

	submitRatingUC := ucRating.NewSubmitRating(deps.Recipes, deps.Ratings, deps.Clock)

	submitReviewUC := ucReview.NewSubmitReview(deps.Reviews, deps.Clock)
	publicReviewsUC := ucReview.NewListPublicReviews(deps.Reviews)
	listReviewsUC := ucReview.NewListReviews(deps.Reviews)
	setReviewStatusUC := ucReview.NewSetReviewStatus(deps.Reviews, deps.Audit)
	deleteReviewUC := ucReview.NewDeleteReview(deps.Reviews, deps.Audit)

	listAuditLogsUC := ucAuditLog.NewListAuditLogs(deps.AuditLogs)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(signupUC, loginUC)
	meHandler := handlers.NewMeHandler(getProfileUC, updateProfileUC, profileImageUC, deps.MaxUploadBytes)
	chefHandler := handlers.NewChefHandler(listChefsUC)
	recipeHandler := handlers.NewRecipeHandler(
		listRecipesUC,
		chefStatsUC,
		getRecipeUC,
		createRecipeUC,
		updateRecipeUC,
		deleteRecipeUC,
		deps.MaxUploadBytes,
	)
	ratingHandler := handlers.NewRatingHandler(submitRatingUC)
	reviewHandler := handlers.NewPublicReviewHandler(
		submitReviewUC,
		publicReviewsUC,
		listReviewsUC,
		setReviewStatusUC,
		deleteReviewUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(listAuditLogsUC)

	// ======================================================
	// API
	// ======================================================
	requireAuth := middleware.AuthMiddleware(deps.Tokens)
	optionalAuth := middleware.OptionalAuth(deps.Tokens)
	chefOnly := middleware.RequireRoles(user.RoleChef)
	adminOnly := middleware.RequireRoles(user.RoleAdmin)
	chefOrAdmin := middleware.RequireRoles(user.RoleChef, user.RoleAdmin)

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", middleware.RateLimit(deps.Limiter, "signup"), authHandler.Signup)
		api.POST("/auth/login", middleware.RateLimit(deps.Limiter, "login"), authHandler.Login)

		// ------------------------------
		// PROFILE
		// ------------------------------
		me := api.Group("/users/me", requireAuth)
		{
			me.GET("", meHandler.GetMe)
			me.PUT("", meHandler.UpdateMe)
			me.PUT("/profile-image", meHandler.UpdateImage)
		}

		api.GET("/chefs", chefHandler.List)

		// ------------------------------
		// RECIPES
		// ------------------------------
		recipes := api.Group("/recipes")
		{
			recipes.GET("", optionalAuth, recipeHandler.List)
			recipes.GET("/my-recipes", requireAuth, chefOnly, recipeHandler.Mine)
			recipes.GET("/my-stats", requireAuth, chefOnly, recipeHandler.MyStats)
			recipes.GET("/all", requireAuth, adminOnly, recipeHandler.All)
			recipes.GET("/:id", optionalAuth, recipeHandler.Get)

			recipes.POST("", requireAuth, chefOnly, recipeHandler.Create)
			recipes.PUT("/:id", requireAuth, chefOrAdmin, recipeHandler.Update)
			recipes.DELETE("/:id", requireAuth, chefOrAdmin, recipeHandler.Delete)
		}

		api.POST("/ratings", requireAuth, ratingHandler.Create)

		// ------------------------------
		// PUBLIC REVIEWS
		// ------------------------------
		reviews := api.Group("/public-reviews")
		{
			reviews.POST("", middleware.RateLimit(deps.Limiter, "review"), optionalAuth, reviewHandler.Submit)
			reviews.GET("", reviewHandler.ListApproved)
			reviews.GET("/manage", requireAuth, adminOnly, reviewHandler.Manage)
			reviews.PUT("/:id/status", requireAuth, adminOnly, reviewHandler.SetStatus)
			reviews.DELETE("/:id", requireAuth, adminOnly, reviewHandler.Delete)
		}

		api.GET("/audit-logs", requireAuth, adminOnly, auditLogsHandler.List)
	}
}
