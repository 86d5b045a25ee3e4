package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)

	// post service
	router.HandlerFunc(http.MethodGet, "/api/posts", app.listPostsHandler)
	router.HandlerFunc(http.MethodPost, "/api/posts", app.createPostHandler)
	router.HandlerFunc(http.MethodGet, "/api/posts/:slug", app.getPostHandler)
	router.HandlerFunc(http.MethodPut, "/api/posts/:slug", app.updatePostHandler)
	router.HandlerFunc(http.MethodDelete, "/api/posts/:slug", app.deletePostHandler)

	// user service
	router.HandlerFunc(http.MethodPost, "/api/register", app.registerUserHandler)
	router.HandlerFunc(http.MethodPost, "/api/login", app.loginUserHandler)
	router.HandlerFunc(http.MethodGet, "/api/users", app.listUsersHandler)

	return app.recoverPanic(app.enableCORS(app.logRequest(router)))
}
