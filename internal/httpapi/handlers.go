package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"solarcast/internal/manager"
	"solarcast/pkg/types"
)

var errTrailingData = errors.New("trailing data after JSON body")

type handlers struct {
	svc Service
}

// root godoc
// @Summary      Liveness message
// @Tags         meta
// @Produce      json
// @Success      200  {object}  types.RootResponse
// @Router       / [get]
func (h *handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.RootResponse{Message: rootMessage})
}

// predictYear godoc
// @Summary      Forecast every day of a year
// @Tags         forecast
// @Accept       json
// @Produce      json
// @Param        body  body      types.YearRequest  true  "Year and model selector"
// @Success      200   {object}  types.YearResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      415   {object}  types.ErrorResponse
// @Failure      422   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Failure      503   {object}  types.ErrorResponse
// @Router       /predict_year [post]
func (h *handlers) predictYear(w http.ResponseWriter, r *http.Request) {
	var req types.YearRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	selector := manager.NormalizeSelector(req.ModelType)
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	start := time.Now()
	if requestLogLevel(r) >= LevelDebug {
		ev := withRequestID(r, zlog.Debug()).Str("model_type", selector)
		if req.Year != nil {
			ev = ev.Int("year", *req.Year)
		}
		ev.Msg("forecast start")
	}
	resp, err := h.svc.PredictYear(ctx, req)
	if err != nil {
		h.fail(w, r, manager.OpYear, selector, start, err)
		return
	}
	observeForecast(selector, manager.OpYear, "ok")
	if requestLogLevel(r) >= LevelDebug {
		withRequestID(r, zlog.Debug()).Str("model_type", selector).Int("year", resp.Year).
			Int("records", len(resp.DailyForecasts)).Dur("dur", time.Since(start)).Msg("forecast end")
	}
	writeJSON(w, http.StatusOK, resp)
}

// predictDate godoc
// @Summary      Forecast a single date
// @Tags         forecast
// @Accept       json
// @Produce      json
// @Param        body  body      types.DateRequest  true  "Date (YYYY-MM-DD) and model selector"
// @Success      200   {object}  types.DateResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      415   {object}  types.ErrorResponse
// @Failure      422   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Failure      503   {object}  types.ErrorResponse
// @Router       /predict_date [post]
func (h *handlers) predictDate(w http.ResponseWriter, r *http.Request) {
	var req types.DateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	selector := manager.NormalizeSelector(req.ModelType)
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	start := time.Now()
	if requestLogLevel(r) >= LevelDebug {
		ev := withRequestID(r, zlog.Debug()).Str("model_type", selector)
		if req.Date != nil {
			ev = ev.Str("date", *req.Date)
		}
		ev.Msg("forecast start")
	}
	resp, err := h.svc.PredictDate(ctx, req)
	if err != nil {
		h.fail(w, r, manager.OpDate, selector, start, err)
		return
	}
	observeForecast(selector, manager.OpDate, "ok")
	if requestLogLevel(r) >= LevelDebug {
		withRequestID(r, zlog.Debug()).Str("model_type", selector).Str("date", resp.Date).
			Dur("dur", time.Since(start)).Msg("forecast end")
	}
	writeJSON(w, http.StatusOK, resp)
}

// fail maps err to a response. Nothing is written when the client is gone.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, op, selector string, start time.Time, err error) {
	if clientGone(r) {
		observeForecast(selector, op, "canceled")
		return
	}
	if abortedByShutdown(err) {
		observeForecast(selector, op, "canceled")
		writeJSONError(w, http.StatusServiceUnavailable, shuttingDownDetail)
		return
	}
	status, msg := statusFor(err)
	outcome := "rejected"
	if status >= http.StatusInternalServerError {
		outcome = "error"
		if requestLogLevel(r) >= LevelError {
			withRequestID(r, zlog.Error()).Err(err).Str("kind", op).Str("model_type", selector).
				Dur("dur", time.Since(start)).Msg("forecast failed")
		}
	}
	observeForecast(selector, op, outcome)
	writeJSONError(w, status, msg)
}

// jsonContentType accepts a missing header, application/json and
// application/*+json, parameters ignored.
func jsonContentType(ct string) bool {
	if ct == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mt == "application/json" || (strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}

// decodeJSON reads exactly one JSON value into v. It writes the error
// response and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if !jsonContentType(r.Header.Get("Content-Type")) {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if err == nil {
		// anything but EOF after the object is trailing data
		if err = dec.Decode(&struct{}{}); err == io.EOF {
			return true
		}
		if err == nil {
			err = errTrailingData
		}
	}
	var (
		tooLarge *http.MaxBytesError
		typeErr  *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &tooLarge):
		writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		writeJSONError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Field '%s' must be of type %s.", typeErr.Field, jsonKind(typeErr.Type.String())))
	default:
		writeJSONError(w, http.StatusUnprocessableEntity, "Invalid JSON body.")
	}
	return false
}

// jsonKind turns a Go type name from a decode error into a JSON-facing name.
func jsonKind(goType string) string {
	switch strings.TrimPrefix(goType, "*") {
	case "int", "int64":
		return "integer"
	case "string":
		return "string"
	default:
		return goType
	}
}
