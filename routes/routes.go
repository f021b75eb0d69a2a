package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gitmusaddique/FitnessTracker-sub000/auth"
	"github.com/gitmusaddique/FitnessTracker-sub000/controllers"
	"github.com/gitmusaddique/FitnessTracker-sub000/media"
	"github.com/gitmusaddique/FitnessTracker-sub000/middleware"
	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
)

// Setup wires every surface onto the app. One storage instance feeds
// all handlers.
func Setup(app *fiber.App, store storage.Storage, manager *auth.Manager, uploader media.Uploader) {
	authCtl := &controllers.AuthController{Store: store, Auth: manager}
	workouts := &controllers.WorkoutController{Store: store, Media: uploader}
	meals := &controllers.MealController{Store: store, Media: uploader}
	trainers := &controllers.TrainerController{Store: store}
	gyms := &controllers.GymController{Store: store}
	bookings := &controllers.BookingController{Store: store}
	challenges := &controllers.ChallengeController{Store: store}
	achievements := &controllers.AchievementController{Store: store}
	stats := &controllers.StatsController{Store: store}
	admin := &controllers.AdminController{Store: store}

	protected := middleware.Protected(manager.UserSecret())
	adminOnly := middleware.AdminProtected(manager)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authCtl.Register)
	authGroup.Post("/login", authCtl.Login)
	authGroup.Post("/refresh", authCtl.Refresh)
	authGroup.Get("/me", protected, authCtl.Me)
	authGroup.Post("/logout", protected, authCtl.Logout)

	api.Get("/workouts", protected, workouts.List)
	api.Post("/workouts", protected, workouts.Create)
	api.Delete("/workouts/:id", protected, workouts.Delete)

	api.Get("/meals", protected, meals.List)
	api.Post("/meals", protected, meals.Create)
	api.Delete("/meals/:id", protected, meals.Delete)

	api.Get("/stats", protected, stats.Me)

	api.Get("/trainers", trainers.List)
	api.Get("/trainers/:id", trainers.Get)
	api.Get("/gyms", gyms.List)
	api.Get("/gyms/:id", gyms.Get)

	api.Get("/bookings", protected, bookings.List)
	api.Post("/bookings", protected, bookings.Create)
	api.Patch("/bookings/:id/cancel", protected, bookings.Cancel)

	api.Get("/challenges", challenges.ListActive)
	api.Get("/challenges/user", protected, challenges.ListMine)
	api.Post("/challenges/join", protected, challenges.Join)
	api.Patch("/challenges/:id/progress", protected, challenges.UpdateProgress)

	api.Get("/achievements", protected, achievements.List)
	api.Post("/achievements/check", protected, achievements.Check)

	adminAPI := app.Group("/admin/api")
	adminAPI.Post("/auth/login", authCtl.AdminLogin)
	adminAPI.Get("/auth/me", adminOnly, authCtl.Me)

	adminAPI.Get("/trainers", adminOnly, admin.ListTrainers)
	adminAPI.Post("/trainers", adminOnly, admin.CreateTrainer)
	adminAPI.Get("/trainers/:id", adminOnly, admin.GetTrainer)
	adminAPI.Patch("/trainers/:id", adminOnly, admin.UpdateTrainer)
	adminAPI.Delete("/trainers/:id", adminOnly, admin.DeleteTrainer)

	adminAPI.Get("/gyms", adminOnly, admin.ListGyms)
	adminAPI.Post("/gyms", adminOnly, admin.CreateGym)
	adminAPI.Get("/gyms/:id", adminOnly, admin.GetGym)
	adminAPI.Patch("/gyms/:id", adminOnly, admin.UpdateGym)
	adminAPI.Delete("/gyms/:id", adminOnly, admin.DeleteGym)

	adminAPI.Get("/users", adminOnly, admin.ListUsers)
	adminAPI.Get("/users/:id", adminOnly, admin.GetUser)
	adminAPI.Patch("/users/:id", adminOnly, admin.UpdateUser)
	adminAPI.Delete("/users/:id", adminOnly, admin.DeleteUser)

	adminAPI.Patch("/bookings/:id/confirm", adminOnly, admin.ConfirmBooking)

	adminAPI.Get("/stats", adminOnly, admin.Stats)
}
