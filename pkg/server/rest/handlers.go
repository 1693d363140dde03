package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lintang/georoute/pkg/datastructure"
	"lintang/georoute/pkg/kv"
	"lintang/georoute/pkg/server"
	"lintang/georoute/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type NavigationService interface {
	ShortestPath(ctx context.Context, roads *geojson.FeatureCollection, start, goal orb.Point,
		mode string, snap bool) (datastructure.Route, error)
	ShortestPathDataset(ctx context.Context, start, goal orb.Point, mode string, snap bool) (datastructure.Route, error)
	DatasetInfo(ctx context.Context) (kv.DatasetMeta, error)
}

type NavigationHandler struct {
	svc          NavigationService
	promeMetrics *metrics
	validate     *validator.Validate
	trans        ut.Translator
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, m *metrics) {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	handler := &NavigationHandler{svc, m, validate, trans}

	r.Group(func(r chi.Router) {
		r.Route("/api/navigations", func(r chi.Router) {
			r.Post("/shortest-path", handler.shortestPath)
			r.Post("/dataset/shortest-path", handler.shortestPathDataset)
			r.Get("/dataset", handler.datasetInfo)
		})
	})
}

// ShortestPathRequest model info
//
//	@Description	request body untuk shortest path query antara 2 titik di road network yang dikirim bersama request
type ShortestPathRequest struct {
	Start   []float64                  `json:"start" validate:"required,len=2"`
	Goal    []float64                  `json:"goal" validate:"required,len=2"`
	Network *geojson.FeatureCollection `json:"network" validate:"required" swaggertype:"object"`
	Mode    string                     `json:"mode" validate:"required,oneof=bikeFoot car"`
	Snap    bool                       `json:"snap"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if s.Start == nil || s.Goal == nil || s.Network == nil || s.Mode == "" {
		return errors.New("missing required parameters: start, goal, network, mode")
	}
	return nil
}

// DatasetShortestPathRequest model info
//
//	@Description	request body untuk shortest path query di road network yang sudah di-load server
type DatasetShortestPathRequest struct {
	Start []float64 `json:"start" validate:"required,len=2"`
	Goal  []float64 `json:"goal" validate:"required,len=2"`
	Mode  string    `json:"mode" validate:"required,oneof=bikeFoot car"`
	Snap  bool      `json:"snap"`
}

func (s *DatasetShortestPathRequest) Bind(r *http.Request) error {
	if s.Start == nil || s.Goal == nil || s.Mode == "" {
		return errors.New("missing required parameters: start, goal, mode")
	}
	return nil
}

// ShortestPathResponse	model info
//
//	@Description	response body untuk shortest path query. path kosong kalau goal tidak reachable
type ShortestPathResponse struct {
	Path     []orb.Point `json:"path" swaggertype:"array,number"`
	Found    bool        `json:"found"`
	Dist     float64     `json:"distance"`
	LengthM  float64     `json:"length_m"`
	Polyline string      `json:"polyline"`
	Alg      string      `json:"algorithm"`
}

func NewShortestPathResponse(route datastructure.Route) *ShortestPathResponse {
	path := route.Path
	if path == nil {
		path = []orb.Point{}
	}
	return &ShortestPathResponse{
		Path:     path,
		Found:    route.Found,
		Dist:     route.Cost,
		LengthM:  util.RoundFloat(route.GeodesicLength(), 2),
		Polyline: route.Polyline(),
		Alg:      "A* Algorithm",
	}
}

// shortestPath
//
//	@Summary		shortest path query antara 2 titik di road network yang dikirim di request body.
//	@Description	shortest path query antara 2 titik. network berupa geojson FeatureCollection berisi MultiLineString dengan properties fclass & oneway. mode bikeFoot atau car.
//	@Tags			navigations
//	@Param			body	body	ShortestPathRequest	true	"request body query shortest path antara 2 titik"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if vv := h.validateRequest(data); vv != nil {
		render.Render(w, r, vv)
		return
	}

	start, goal := toPoint(data.Start), toPoint(data.Goal)
	route, err := h.svc.ShortestPath(r.Context(), data.Network, start, goal, data.Mode, data.Snap)
	if err != nil {
		render.Render(w, r, h.errChi(r, err))
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues(data.Mode, strconv.FormatBool(route.Found)).Inc()
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewShortestPathResponse(route))
}

// shortestPathDataset
//
//	@Summary		shortest path query antara 2 titik di road network yang di-load waktu server start.
//	@Description	shortest path query antara 2 titik di road network yang di-load waktu server start. mode bikeFoot atau car.
//	@Tags			navigations
//	@Param			body	body	DatasetShortestPathRequest	true	"request body query shortest path di dataset server"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/dataset/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPathDataset(w http.ResponseWriter, r *http.Request) {
	data := &DatasetShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if vv := h.validateRequest(data); vv != nil {
		render.Render(w, r, vv)
		return
	}

	route, err := h.svc.ShortestPathDataset(r.Context(), toPoint(data.Start), toPoint(data.Goal), data.Mode, data.Snap)
	if err != nil {
		render.Render(w, r, h.errChi(r, err))
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues(data.Mode, strconv.FormatBool(route.Found)).Inc()
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewShortestPathResponse(route))
}

// datasetInfo
//
//	@Summary		info road network dataset yang di-load server.
//	@Tags			navigations
//	@Produce		application/json
//	@Router			/navigations/dataset [get]
//	@Success		200	{object}	kv.DatasetMeta
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) datasetInfo(w http.ResponseWriter, r *http.Request) {
	meta, err := h.svc.DatasetInfo(r.Context())
	if err != nil {
		render.Render(w, r, h.errChi(r, err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, meta)
}

func toPoint(coord []float64) orb.Point {
	return orb.Point{coord[0], coord[1]}
}

func (h *NavigationHandler) validateRequest(data interface{}) render.Renderer {
	err := h.validate.Struct(data)
	if err == nil {
		return nil
	}
	return ErrValidation(err, translateError(err, h.trans))
}

// errChi error yang tidak dikenal jadi 500 tanpa detail, detailnya cuma dicatat di log.
func (h *NavigationHandler) errChi(r *http.Request, err error) render.Renderer {
	if getStatusCode(err) == http.StatusInternalServerError {
		httplog.LogEntry(r.Context()).Error("shortest path query failed", "err", err)
	}
	return ErrChi(err)
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

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
		ErrorText:      server.MessageInternalServerError,
	}
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	code := getStatusCode(err)
	switch code {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		return ErrInternalServerErrorRend(err)
	case http.StatusConflict:
		statusText = "Resource conflict."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
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
