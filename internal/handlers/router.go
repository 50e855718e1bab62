package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter собирает дерево маршрутов API. Middleware передаётся сюда,
// потому что chi требует регистрировать его до маршрутов.
func NewRouter(taskHandler *TaskHandler, commentHandler *CommentHandler, middlewares ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	for _, m := range middlewares {
		r.Use(m)
	}

	r.Get("/", taskHandler.Index)
	r.Get("/health", taskHandler.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.GetTasks)  // GET /api/tasks
			r.Post("/", taskHandler.PostTask) // POST /api/tasks

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", taskHandler.GetTaskByID)       // GET /api/tasks/{id}
				r.Put("/", taskHandler.UpdateTaskByID)    // PUT /api/tasks/{id}
				r.Delete("/", taskHandler.DeleteTaskByID) // DELETE /api/tasks/{id}

				r.Get("/comments", commentHandler.GetTaskComments) // GET /api/tasks/{id}/comments
				r.Post("/comments", commentHandler.PostComment)    // POST /api/tasks/{id}/comments
			})
		})

		r.Route("/comments/{id}", func(r chi.Router) {
			r.Get("/", commentHandler.GetCommentByID)       // GET /api/comments/{id}
			r.Put("/", commentHandler.UpdateCommentByID)    // PUT /api/comments/{id}
			r.Delete("/", commentHandler.DeleteCommentByID) // DELETE /api/comments/{id}
		})
	})

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	return r
}
