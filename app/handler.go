package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sushihentaime/postify/internal/common"
	"github.com/sushihentaime/postify/internal/postservice"
	"github.com/sushihentaime/postify/internal/userservice"
)

func (app *application) listPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := app.postService.GetPosts(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "Posts fetched successfully!", "posts": posts}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getPostHandler(w http.ResponseWriter, r *http.Request) {
	slug := app.readSlugParam(r)

	post, err := app.postService.GetPost(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "Post fetched successfully!", "post": post}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type createPostRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	AuthorID    int    `json:"author_id"`
	IsPublished bool   `json:"is_published"`
	Date        string `json:"date"`
}

func (app *application) createPostHandler(w http.ResponseWriter, r *http.Request) {
	var input createPostRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	date, err := parseDate(input.Date)
	if input.Date != "" && err != nil {
		app.failedValidationErrorResponse(w, r, map[string]string{"date": "must be a valid date"})
		return
	}

	req := &postservice.CreatePostRequest{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Image:       input.Image,
		AuthorID:    input.AuthorID,
		IsPublished: input.IsPublished,
		Date:        date,
	}

	post, err := app.postService.CreatePost(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrDuplicateSlug):
			app.failedValidationErrorResponse(w, r, map[string]string{"slug": "a post with this slug already exists"})
		case errors.Is(err, postservice.ErrAuthorNotFound):
			app.failedValidationErrorResponse(w, r, map[string]string{"author_id": "author does not exist"})
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"message": "Post created successfully!", "post": post}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type updatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Author      struct {
		ID int `json:"id"`
	} `json:"author"`
	IsPublished bool   `json:"is_published"`
	Date        string `json:"date"`
}

func (app *application) updatePostHandler(w http.ResponseWriter, r *http.Request) {
	slug := app.readSlugParam(r)

	var input updatePostRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	date, err := parseDate(input.Date)
	if input.Date != "" && err != nil {
		app.failedValidationErrorResponse(w, r, map[string]string{"date": "must be a valid date"})
		return
	}

	req := &postservice.UpdatePostRequest{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		AuthorID:    input.Author.ID,
		IsPublished: input.IsPublished,
		Date:        date,
	}

	post, err := app.postService.UpdatePost(r.Context(), slug, req)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.Is(err, postservice.ErrAuthorNotFound):
			app.failedValidationErrorResponse(w, r, map[string]string{"author_id": "author does not exist"})
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "Post updated successfully!", "post": post}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	slug := app.readSlugParam(r)

	err := app.postService.DeletePost(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type registerUserRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var input registerUserRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, token, err := app.userService.RegisterUser(r.Context(), input.UserName, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrDuplicateEmail):
			app.failedValidationErrorResponse(w, r, map[string]string{"email": fmt.Sprintf("Email: %s is already in use.", input.Email)})
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"message": "User registered successfully!", "token": token, "user": user.Public()}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type loginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	var input loginUserRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, token, err := app.userService.LoginUser(r.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrAuthenticationFailure):
			app.invalidCredentialsErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "User logged in successfully!", "token": token, "user": user.Public()}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.userService.GetUsers(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "Users fetched successfully!", "users": users}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
