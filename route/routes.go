package route

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/Biji-Biji-Initiative/elevate-sub001/app/model"
	"github.com/Biji-Biji-Initiative/elevate-sub001/app/repo"
	"github.com/Biji-Biji-Initiative/elevate-sub001/app/service"
	"github.com/Biji-Biji-Initiative/elevate-sub001/middleware"
)

func SetupRoutes(app *fiber.App, pgDB *gorm.DB, sqlDB *sql.DB, mongoDB *mongo.Database) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	userRepo := repo.NewUserRepo(pgDB, sqlDB)
	submissionRepo := repo.NewSubmissionRepo(sqlDB, mongoDB)
	badgeRepo := repo.NewBadgeRepo(pgDB)
	auditRepo := repo.NewAuditRepo(mongoDB)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	submissionService := service.NewSubmissionService(submissionRepo, auditRepo)
	badgeService := service.NewBadgeService(badgeRepo, auditRepo)
	analyticsService := service.NewAnalyticsService(userRepo, submissionRepo, auditRepo)

	auth := v1.Group("/auth")
	auth.Post("/login", authService.Login)
	auth.Post("/refresh", authService.Refresh)
	auth.Post("/logout", authService.Logout)

	v1.Get("/leaderboard", analyticsService.Leaderboard)
	v1.Get("/badges", badgeService.List)

	protected := v1.Group("", middleware.AuthRequired())

	protected.Get("/auth/profile", authService.Profile)
	protected.Patch("/profile", userService.UpdateProfile)

	protected.Get("/users", middleware.RoleRequired(model.RoleAdmin), userService.List)
	protected.Get("/users/:id", middleware.RoleRequired(model.RoleAdmin), userService.Get)

	protected.Post("/submissions", submissionService.Create)
	protected.Get("/submissions", submissionService.List)
	protected.Get("/submissions/:id", submissionService.Get)
	protected.Delete("/submissions/:id", submissionService.Delete)

	review := protected.Group("/submissions", middleware.RoleRequired(model.RoleReviewer, model.RoleAdmin))
	review.Post("/:id/approve", submissionService.Approve)
	review.Post("/:id/reject", submissionService.Reject)

	admin := protected.Group("/admin", middleware.RoleRequired(model.RoleAdmin))
	admin.Post("/users", userService.Register)
	admin.Post("/badges", badgeService.Create)
	admin.Patch("/badges/:code", badgeService.Update)
	admin.Delete("/badges/:code", badgeService.Delete)
	admin.Post("/badges/:code/award", badgeService.Award)
	admin.Get("/stats", analyticsService.Stats)
	admin.Get("/audit", analyticsService.AuditLog)

	protected.Post("/submissions/:id/revoke", middleware.RoleRequired(model.RoleAdmin), submissionService.Revoke)
}
