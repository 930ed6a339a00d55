package routes

import (
	"net/http"

	"github.com/sillygoals/sillygoals/internal/app"
	"github.com/sillygoals/sillygoals/internal/handler"
	"github.com/sillygoals/sillygoals/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	dashboard := handler.NewDashboardHandler(app.GroupService)
	group := handler.NewGroupHandler(app.GroupService, app.GoalService)
	goal := handler.NewGoalHandler(app.GoalService, app.GroupService, app.Markdown)

	mux := http.NewServeMux()

	// Root
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})

	// Auth
	mux.HandleFunc("GET /auth", middleware.RequireGuest(auth.AuthPage))
	mux.HandleFunc("POST /auth/login", middleware.RequireGuest(auth.Login))
	mux.HandleFunc("POST /auth/register", middleware.RequireGuest(auth.Register))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Dashboard
	mux.HandleFunc("GET /dashboard", middleware.RequireAuth(dashboard.DashboardPage))

	// Groups
	mux.HandleFunc("GET /groups/new", middleware.RequireAuth(group.NewGroupPage))
	mux.HandleFunc("POST /groups/new", middleware.RequireAuth(group.CreateGroup))
	mux.HandleFunc("GET /groups/{id}", middleware.RequireAuth(group.ShowGroup))
	mux.HandleFunc("GET /groups/{id}/edit", middleware.RequireAuth(group.EditGroupPage))
	mux.HandleFunc("POST /groups/{id}/edit", middleware.RequireAuth(group.UpdateGroup))
	mux.HandleFunc("DELETE /groups/{id}", middleware.RequireAuth(group.DeleteGroup))

	// Goals
	mux.HandleFunc("GET /groups/{id}/goals/new", middleware.RequireAuth(goal.NewGoalPage))
	mux.HandleFunc("POST /groups/{id}/goals/new", middleware.RequireAuth(goal.CreateGoal))
	mux.HandleFunc("GET /groups/{group_id}/goals/{goal_id}", middleware.RequireAuth(goal.ShowGoal))
	mux.HandleFunc("GET /groups/{group_id}/goals/{goal_id}/edit", middleware.RequireAuth(goal.EditGoalPage))
	mux.HandleFunc("POST /groups/{group_id}/goals/{goal_id}/edit", middleware.RequireAuth(goal.UpdateGoal))
	mux.HandleFunc("PATCH /groups/{group_id}/goals/{goal_id}/stage", middleware.RequireAuth(goal.PatchGoalStage))
	mux.HandleFunc("DELETE /groups/{group_id}/goals/{goal_id}", middleware.RequireAuth(goal.DeleteGoal))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService),
		middleware.WithURLPath,
	)
}
