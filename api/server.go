package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers of the gateway.
type ServerInterface interface {
	// (GET /healthz)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// (GET /movies)
	ListMovies(w http.ResponseWriter, r *http.Request)
	// (POST /movies)
	CreateMovie(w http.ResponseWriter, r *http.Request)
	// (GET /movies/{id})
	GetMovie(w http.ResponseWriter, r *http.Request, id string)
	// (PUT /movies/{id})
	UpdateMovie(w http.ResponseWriter, r *http.Request, id string)
	// (DELETE /movies/{id})
	DeleteMovie(w http.ResponseWriter, r *http.Request, id string)
}

type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, handler http.Handler) {
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) bindID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string

	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return "", false
	}

	return id, true
}

func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.GetHealth))
}

func (siw *ServerInterfaceWrapper) ListMovies(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.ListMovies))
}

func (siw *ServerInterfaceWrapper) CreateMovie(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.CreateMovie))
}

func (siw *ServerInterfaceWrapper) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetMovie(w, r, id)
	}))
}

func (siw *ServerInterfaceWrapper) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateMovie(w, r, id)
	}))
}

func (siw *ServerInterfaceWrapper) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteMovie(w, r, id)
	}))
}

type ChiServerOptions struct {
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates an http.Handler with routing matching the OpenAPI spec
// based on r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{BaseRouter: r})
}

// HandlerWithOptions creates an http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}

	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get("/healthz", wrapper.GetHealth)
	})
	r.Group(func(r chi.Router) {
		r.Get("/movies", wrapper.ListMovies)
	})
	r.Group(func(r chi.Router) {
		r.Post("/movies", wrapper.CreateMovie)
	})
	r.Group(func(r chi.Router) {
		r.Get("/movies/{id}", wrapper.GetMovie)
	})
	r.Group(func(r chi.Router) {
		r.Put("/movies/{id}", wrapper.UpdateMovie)
	})
	r.Group(func(r chi.Router) {
		r.Delete("/movies/{id}", wrapper.DeleteMovie)
	})

	return r
}
