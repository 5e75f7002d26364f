package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"

	"learnsmart-backend/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/schema"
)

const (
	internalServerErrorMessage = "Internal server error"
	routeNotFoundMessage       = "API endpoint not found"
)

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string {
	return e.err.Error()
}

func (e *codedError) Unwrap() error {
	return e.err
}

func CodedError(code int, err error) error {
	return &codedError{err: err, code: code}
}

func CodedErrorf(code int, format string, args ...any) error {
	return &codedError{err: fmt.Errorf(format, args...), code: code}
}

func ParseRequest[T any](r *http.Request) (T, error) {
	var data T
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		slog.Error("error parsing request body", "error", err)
		return data, CodedErrorf(http.StatusBadRequest, "unable to parse request body")
	}
	return data, nil
}

var queryDecoder = func() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}()

func ParseRequestQueryParams[T any](r *http.Request) (T, error) {
	var data T
	if err := r.ParseForm(); err != nil {
		slog.Error("error parsing form", "error", err)
		return data, CodedErrorf(http.StatusBadRequest, "unable to parse request query params")
	}

	if err := queryDecoder.Decode(&data, r.Form); err != nil {
		slog.Error("error decoding query params", "error", err)
		return data, CodedErrorf(http.StatusBadRequest, "unable to parse request query params")
	}

	return data, nil
}

// RestHandler adapts an endpoint to http.HandlerFunc. Coded errors are
// reported to the caller with their message; anything else is logged and
// answered with an opaque 500.
func RestHandler(handler func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := handler(r)
		if err != nil {
			var cerr *codedError
			if errors.As(err, &cerr) {
				if cerr.code >= http.StatusInternalServerError {
					slog.Error("internal server error received in endpoint", "path", r.URL.Path, "error", err)
				}
				WriteJsonError(w, cerr.code, err.Error())
			} else {
				slog.Error("received non coded error from endpoint", "path", r.URL.Path, "error", err)
				WriteJsonError(w, http.StatusInternalServerError, internalServerErrorMessage)
			}
			return
		}

		if res == nil {
			res = struct{}{}
		}

		WriteJsonResponse(w, http.StatusOK, res)
	}
}

func WriteJsonResponse(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("error serializing response body", "error", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(api.ErrorResponse{Error: internalServerErrorMessage})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Error("error writing response body", "error", err)
	}
}

func WriteJsonError(w http.ResponseWriter, status int, message string) {
	WriteJsonResponse(w, status, api.ErrorResponse{Error: message})
}

// URLParamUint returns ok=false when the parameter is missing or is not a
// non-negative integer.
func URLParamUint(r *http.Request, key string) (uint, bool) {
	param := chi.URLParam(r, key)
	if len(param) == 0 {
		return 0, false
	}

	id, err := strconv.ParseUint(param, 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	WriteJsonError(w, http.StatusNotFound, routeNotFoundMessage)
}

// Recoverer converts a panic in any downstream handler into a generic JSON
// 500 response. The panic value and stack only go to the log.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error("unhandled panic in request",
					"request_id", middleware.GetReqID(r.Context()),
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				WriteJsonError(w, http.StatusInternalServerError, internalServerErrorMessage)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
