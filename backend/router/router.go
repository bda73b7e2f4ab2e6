package router

import (
	"net/http"

	"ieltsim/backend/app/controllers"
	"ieltsim/backend/app/middleware"
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, testCtrl *controllers.TestController, adminCtrl *controllers.AdminController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /{$}", httpCtrl.Health)
	mux.HandleFunc("POST /api/auth/register", authCtrl.Register)
	mux.HandleFunc("POST /api/auth/login", authCtrl.Login)

	// authenticated test endpoints
	mux.Handle("GET /api/test/questions", mw.RequireAuth(http.HandlerFunc(testCtrl.Questions)))
	mux.Handle("POST /api/test/submit", mw.RequireAuth(http.HandlerFunc(testCtrl.Submit)))
	mux.Handle("GET /api/test/history", mw.RequireAuth(http.HandlerFunc(testCtrl.History)))
	mux.Handle("GET /api/test/leaderboard", mw.RequireAuth(http.HandlerFunc(testCtrl.Leaderboard)))
	mux.Handle("GET /api/test/answers", mw.RequireAuth(http.HandlerFunc(testCtrl.Answers)))

	// admin-only endpoints
	mux.Handle("GET /api/admin/stats", mw.RequireAdmin(http.HandlerFunc(adminCtrl.GetStats)))
	mux.Handle("GET /api/admin/users", mw.RequireAdmin(http.HandlerFunc(adminCtrl.ListUsers)))
	mux.Handle("DELETE /api/admin/users/{id}", mw.RequireAdmin(http.HandlerFunc(adminCtrl.DeleteUser)))

	return mux
}
