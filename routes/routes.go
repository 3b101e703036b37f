// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"boardgames-api/controllers"
	"boardgames-api/repositories"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Repositories
	reviewRepo := repositories.NewReviewRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Controllers
	reviewController := controllers.NewReviewController(reviewRepo)
	commentController := controllers.NewCommentController(commentRepo)
	categoryController := controllers.NewCategoryController(categoryRepo)
	userController := controllers.NewUserController(userRepo)

	api := r.Group("/api")
	{
		api.GET("/health", controllers.HealthCheck)

		api.GET("/categories", categoryController.GetCategories)
		api.GET("/users", userController.GetUsers)

		api.GET("/reviews", reviewController.GetReviews)
		api.GET("/reviews/:review_id", reviewController.GetReviewByID)
		api.PATCH("/reviews/:review_id", reviewController.PatchReviewVotes)

		api.GET("/reviews/:review_id/comments", commentController.GetReviewComments)
		api.POST("/reviews/:review_id/comments", commentController.PostComment)

		api.DELETE("/comments/:comment_id", commentController.DeleteComment)
	}

	r.NoRoute(controllers.RouteNotFound)
}
