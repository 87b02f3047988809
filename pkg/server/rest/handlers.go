package rest

import (
	"context"
	"errors"
	"fmt"
	"lintang/pathplanner/pkg/datastructure"
	"lintang/pathplanner/pkg/engine/avoidance"
	"lintang/pathplanner/pkg/kv"
	"lintang/pathplanner/pkg/server"
	"lintang/pathplanner/pkg/server/rest/service"
	"lintang/pathplanner/pkg/util"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type PlannerService interface {
	Plan(ctx context.Context, start, goal datastructure.Coordinate, blocked []datastructure.Coordinate) (service.PlanResult, error)
	Avoid(ctx context.Context, position, obstacle datastructure.Coordinate, heading float64) avoidance.Maneuver
	PlansNear(ctx context.Context, lat, lon float64) ([]kv.CachedPlan, error)
}

type PlannerHandler struct {
	svc          PlannerService
	promeMetrics *metrics
}

func PlannerRouter(r *chi.Mux, svc PlannerService, m *metrics) {
	handler := &PlannerHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api", func(r chi.Router) {
			r.Post("/plan", handler.plan)
			r.Post("/avoid", handler.avoid)
			r.Get("/plans/near", handler.plansNear)
		})
	})
}

// validateRequest validasi struct pakai tag validate. Kalau gagal, response error sudah ditulis dan return false.
func validateRequest(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return false
	}
	return true
}

// PlanRequest request body untuk grid path planning.
//
// Deny (list polygon) diterima tapi tidak dipakai sama sekali oleh planner.
type PlanRequest struct {
	Start   []float64     `json:"start" validate:"required,len=2"`
	Goal    []float64     `json:"goal" validate:"required,len=2"`
	Blocked [][]float64   `json:"blocked" validate:"omitempty,dive,len=2"`
	Deny    [][][]float64 `json:"deny"`
}

func (s *PlanRequest) Bind(r *http.Request) error {
	if s.Start == nil || s.Goal == nil {
		return errors.New("invalid request")
	}
	return nil
}

type PlanResponse struct {
	Path     [][]float64 `json:"path"`
	Polyline string      `json:"polyline"`
	Dist     float64     `json:"distance"`
	Expanded int         `json:"expanded"`
	Cached   bool        `json:"cached"`
}

func NewPlanResponse(res service.PlanResult) *PlanResponse {
	path := make([][]float64, 0, len(res.Path))
	for _, p := range res.Path {
		path = append(path, p.Pair())
	}
	return &PlanResponse{
		Path:     path,
		Polyline: datastructure.RenderPath(res.Path),
		Dist:     util.RoundFloat(res.Distance, 2),
		Expanded: res.Expanded,
		Cached:   res.Cached,
	}
}

// plan
//
//	@Summary		grid A* dari start ke goal, menghindari cell blocked.
//	@Tags			planner
//	@Param			body	body	PlanRequest	true	"request body grid path planning"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/plan [post]
//	@Success		200	{object}	PlanResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *PlannerHandler) plan(w http.ResponseWriter, r *http.Request) {
	data := &PlanRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, *data) {
		return
	}

	blocked := make([]datastructure.Coordinate, 0, len(data.Blocked))
	for _, b := range data.Blocked {
		blocked = append(blocked, datastructure.NewCoordinateFromPair(b))
	}

	res, err := h.svc.Plan(r.Context(), datastructure.NewCoordinateFromPair(data.Start),
		datastructure.NewCoordinateFromPair(data.Goal), blocked)
	if err != nil {
		h.promeMetrics.PlanQueryCount.WithLabelValues("not_found").Inc()
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.PlanQueryCount.WithLabelValues("found").Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewPlanResponse(res))
}

// AvoidRequest request body untuk reactive obstacle avoidance.
type AvoidRequest struct {
	Position []float64 `json:"position" validate:"required,len=2"`
	Obstacle []float64 `json:"obstacle" validate:"required,len=2"`
	Heading  float64   `json:"heading"`
}

func (s *AvoidRequest) Bind(r *http.Request) error {
	if s.Position == nil || s.Obstacle == nil {
		return errors.New("invalid request")
	}
	return nil
}

type AvoidResponse struct {
	NewHeading float64 `json:"new_heading"`
	Command    string  `json:"command"`
}

// avoid
//
//	@Summary		reactive avoid: sidestep 10 derajat kalau obstacle ada di grid ~5m.
//	@Tags			planner
//	@Param			body	body	AvoidRequest	true	"request body avoid"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/avoid [post]
//	@Success		200	{object}	AvoidResponse
//	@Failure		400	{object}	ErrResponse
func (h *PlannerHandler) avoid(w http.ResponseWriter, r *http.Request) {
	data := &AvoidRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, *data) {
		return
	}

	m := h.svc.Avoid(r.Context(), datastructure.NewCoordinateFromPair(data.Position),
		datastructure.NewCoordinateFromPair(data.Obstacle), data.Heading)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &AvoidResponse{NewHeading: m.NewHeading, Command: string(m.Command)})
}

type CachedPlanRes struct {
	Start []float64   `json:"start"`
	Goal  []float64   `json:"goal"`
	Path  [][]float64 `json:"path"`
	Found bool        `json:"found"`
}

type PlansNearResponse struct {
	Plans []CachedPlanRes `json:"plans"`
}

func RenderPlansNearResponse(plans []kv.CachedPlan) *PlansNearResponse {
	res := make([]CachedPlanRes, 0, len(plans))
	for _, p := range plans {
		path := make([][]float64, 0, len(p.Path))
		for _, c := range p.Path {
			path = append(path, c.Pair())
		}
		res = append(res, CachedPlanRes{
			Start: p.Start.Pair(),
			Goal:  p.Goal.Pair(),
			Path:  path,
			Found: p.Found,
		})
	}
	return &PlansNearResponse{Plans: res}
}

func parseLatLonQuery(r *http.Request) (float64, float64, error) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, errors.New("invalid lat")
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, errors.New("invalid lon")
	}
	return lat, lon, nil
}

// plansNear
//
//	@Summary		plan yang pernah dihitung dengan start di sekitar (lat, lon).
//	@Tags			planner
//	@Param			lat	query	number	true	"latitude"
//	@Param			lon	query	number	true	"longitude"
//	@Produce		application/json
//	@Router			/plans/near [get]
//	@Success		200	{object}	PlansNearResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *PlannerHandler) plansNear(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := parseLatLonQuery(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	plans, err := h.svc.PlansNear(r.Context(), lat, lon)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderPlansNearResponse(plans))
}

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusConflict:
		statusText = "Resource conflict."
	case http.StatusBadRequest:
		statusText = "Invalid request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	}
	switch ierr.Code() {
	case server.ErrInternalServerError:
		return http.StatusInternalServerError
	case server.ErrNotFound:
		return http.StatusNotFound
	case server.ErrConflict:
		return http.StatusConflict
	case server.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, fmt.Errorf("%s", e.Translate(trans)))
	}
	return errs
}
