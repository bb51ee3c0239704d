package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/zapponejosh/patro-api/internal/calendar"
	"github.com/zapponejosh/patro-api/internal/config"
	"github.com/zapponejosh/patro-api/internal/database"
	"github.com/zapponejosh/patro-api/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *Metrics
	names    *Names
	validate *validator.Validate

	// converter is swapped whole when the table changes; readers never lock.
	converter atomic.Pointer[calendar.Converter]
	reloadMu  sync.Mutex

	clock    calendar.Clock
	location *time.Location
}

// NewHandlers creates a new Handlers instance serving conv.
func NewHandlers(db *database.DB, conv *calendar.Converter, cfg *config.Config, log *slog.Logger, metrics *Metrics, names *Names) *Handlers {
	h := &Handlers{
		db:       db,
		cfg:      cfg,
		logger:   log,
		metrics:  metrics,
		names:    names,
		validate: validator.New(),
		clock:    calendar.RealClock{},
		location: cfg.Location(),
	}
	h.converter.Store(conv)
	metrics.TableLoaded(conv.Table())
	return h
}

// SetClock replaces the clock used to answer /today.
func (h *Handlers) SetClock(c calendar.Clock) {
	h.clock = c
}

// Converter returns the converter currently in service.
func (h *Handlers) Converter() *calendar.Converter {
	return h.converter.Load()
}

func (h *Handlers) resolver() *calendar.Resolver {
	return &calendar.Resolver{
		Converter: h.Converter(),
		Clock:     h.clock,
		Location:  h.location,
	}
}

// =============================================================================
// Response shapes
// =============================================================================

// localizedBS is a BS date with names in the request language.
type localizedBS struct {
	calendar.BSDate
	Lang           string `json:"lang"`
	LocalMonthName string `json:"local_month_name"`
	LocalDayName   string `json:"local_day_name"`
	LocalBSDate    string `json:"local_bs_date"`
}

// localizedAD is an AD date with names in the request language.
type localizedAD struct {
	calendar.ADDate
	Lang         string `json:"lang"`
	LocalDayName string `json:"local_day_name"`
	LocalBSDate  string `json:"local_bs_date"`
}

type monthName struct {
	Month     int    `json:"month"`
	Name      string `json:"name"`
	LocalName string `json:"local_name"`
}

type monthResponse struct {
	calendar.Month
	Lang           string   `json:"lang"`
	LocalMonthName string   `json:"local_month_name"`
	WeekdayNames   []string `json:"weekday_names"`
}

type rangeResponse struct {
	FirstYear int    `json:"first_year"`
	LastYear  int    `json:"last_year"`
	Years     int    `json:"years"`
	FirstAD   string `json:"first_ad_date"`
	LastAD    string `json:"last_ad_date"`
	AnchorBS  string `json:"anchor_bs"`
	AnchorAD  string `json:"anchor_ad"`
	Strict    bool   `json:"strict_days"`
}

func (h *Handlers) localizeBS(r *http.Request, bs calendar.BSDate) localizedBS {
	lang := h.names.Lang(r)
	loc := h.names.Localizer(lang)
	return localizedBS{
		BSDate:         bs,
		Lang:           lang,
		LocalMonthName: h.names.Month(loc, bs.Month),
		LocalDayName:   h.names.Weekday(loc, bs.Weekday),
		LocalBSDate:    Digits(lang, bs.BSDate),
	}
}

// =============================================================================
// Request shapes
// =============================================================================

type adToBSQuery struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

// Any year is accepted here: years outside the table are estimated by the
// converter or reported as out of range, never rejected as malformed.
type bsDateQuery struct {
	Year  int
	Month int `validate:"min=1,max=12"`
	Day   int `validate:"min=1"`
}

type monthPath struct {
	Year  int
	Month int `validate:"min=1,max=12"`
}

// UpsertYearRequest is the body of PUT /api/v1/admin/years/{year}.
type UpsertYearRequest struct {
	Months []int  `json:"months" validate:"len=12,dive,min=29,max=32"`
	Source string `json:"source" validate:"max=200"`
}

// =============================================================================
// Handlers
// =============================================================================

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeHealthCheckFail)
		return
	}

	t := h.Converter().Table()
	WriteSuccess(w, map[string]any{
		"status":     "healthy",
		"first_year": t.FirstYear(),
		"last_year":  t.LastYear(),
	})
}

// GetToday handles GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	res := h.resolver()
	today := res.Today()
	h.metrics.observeConversion(directionADToBS, today.Approximate, nil)

	WriteSuccess(w, map[string]any{
		"date":     h.localizeBS(r, today),
		"timezone": res.Now().Format("-07:00"),
	})
}

// ConvertADToBS handles GET /api/v1/convert/ad-to-bs?date=YYYY-MM-DD
func (h *Handlers) ConvertADToBS(w http.ResponseWriter, r *http.Request) {
	q := adToBSQuery{Date: r.URL.Query().Get("date")}
	if err := h.validate.Struct(q); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date %q. Use YYYY-MM-DD: %s", q.Date, validationMessage(err)))
		return
	}

	date, err := calendar.ParseDateString(q.Date)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", q.Date))
		return
	}

	bs := h.Converter().ADToBS(date)
	h.metrics.observeConversion(directionADToBS, bs.Approximate, nil)
	WriteSuccess(w, h.localizeBS(r, bs))
}

// ConvertBSToAD handles GET /api/v1/convert/bs-to-ad?year=&month=&day=
// A single date=Y-M-D parameter is accepted as well.
func (h *Handlers) ConvertBSToAD(w http.ResponseWriter, r *http.Request) {
	q, err := parseBSQuery(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	if err := h.validate.Struct(q); err != nil {
		WriteError(w, http.StatusBadRequest, validationMessage(err), CodeInvalidDate)
		return
	}

	ad, err := h.Converter().BSToAD(q.Year, q.Month, q.Day)
	h.metrics.observeConversion(directionBSToAD, ad.Approximate, err)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	lang := h.names.Lang(r)
	WriteSuccess(w, localizedAD{
		ADDate:       ad,
		Lang:         lang,
		LocalDayName: h.names.Weekday(h.names.Localizer(lang), ad.Weekday),
		LocalBSDate:  Digits(lang, ad.BSDate),
	})
}

func parseBSQuery(r *http.Request) (bsDateQuery, error) {
	query := r.URL.Query()
	if s := query.Get("date"); s != "" {
		d, err := calendar.ParseBSString(s)
		if err != nil {
			return bsDateQuery{}, err
		}
		return bsDateQuery{Year: d.Year, Month: d.Month, Day: d.Day}, nil
	}

	var q bsDateQuery
	for _, p := range []struct {
		name string
		dst  *int
	}{{"year", &q.Year}, {"month", &q.Month}, {"day", &q.Day}} {
		v := query.Get(p.name)
		if v == "" {
			return bsDateQuery{}, fmt.Errorf("%s parameter is required", p.name)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return bsDateQuery{}, fmt.Errorf("%s must be an integer, got %q", p.name, v)
		}
		*p.dst = n
	}
	return q, nil
}

// GetRange handles GET /api/v1/calendar/range
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	conv := h.Converter()
	t := conv.Table()
	anchor := conv.Anchor()

	first, err := conv.BSToAD(t.FirstYear(), 1, 1)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	lastRow, _ := t.Row(t.LastYear())
	last, err := conv.BSToAD(t.LastYear(), 12, lastRow.Months[11])
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, rangeResponse{
		FirstYear: t.FirstYear(),
		LastYear:  t.LastYear(),
		Years:     t.Len(),
		FirstAD:   first.ADDate,
		LastAD:    last.ADDate,
		AnchorBS:  anchor.BS.String(),
		AnchorAD:  calendar.FormatDate(anchor.AD),
		Strict:    !conv.Lenient(),
	})
}

// ListMonths handles GET /api/v1/calendar/months?lang=
func (h *Handlers) ListMonths(w http.ResponseWriter, r *http.Request) {
	lang := h.names.Lang(r)
	loc := h.names.Localizer(lang)

	months := make([]monthName, 12)
	for i, name := range calendar.MonthNames() {
		months[i] = monthName{
			Month:     i + 1,
			Name:      name,
			LocalName: h.names.Month(loc, i+1),
		}
	}

	WriteSuccess(w, map[string]any{
		"lang":   lang,
		"months": months,
	})
}

// GetMonth handles GET /api/v1/calendar/{year}/{month}
func (h *Handlers) GetMonth(w http.ResponseWriter, r *http.Request) {
	m, ok := h.month(w, r)
	if !ok {
		return
	}

	lang := h.names.Lang(r)
	loc := h.names.Localizer(lang)
	WriteSuccess(w, monthResponse{
		Month:          m,
		Lang:           lang,
		LocalMonthName: h.names.Month(loc, m.Month),
		WeekdayNames:   h.names.Weekdays(loc),
	})
}

// GetMonthICS handles GET /api/v1/calendar/{year}/{month}/ics
func (h *Handlers) GetMonthICS(w http.ResponseWriter, r *http.Request) {
	m, ok := h.month(w, r)
	if !ok {
		return
	}

	name := h.names.Month(h.names.Localizer(h.names.Lang(r)), m.Month)
	body, err := monthICS(m, name, h.clock.Now())
	if err != nil {
		logger.Error(r.Context(), "failed to render month calendar", err,
			slog.Int("year", m.Year), slog.Int("month", m.Month))
		WriteInternalError(w, "Failed to render calendar")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="bs-%d-%02d.ics"`, m.Year, m.Month))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// month parses {year}/{month} and builds the grid, writing the error
// response itself when it fails.
func (h *Handlers) month(w http.ResponseWriter, r *http.Request) (calendar.Month, bool) {
	year, err1 := strconv.Atoi(chi.URLParam(r, "year"))
	month, err2 := strconv.Atoi(chi.URLParam(r, "month"))
	if err1 != nil || err2 != nil {
		WriteBadRequest(w, "Year and month must be integers")
		return calendar.Month{}, false
	}
	if err := h.validate.Struct(monthPath{Year: year, Month: month}); err != nil {
		WriteError(w, http.StatusBadRequest, validationMessage(err), CodeInvalidDate)
		return calendar.Month{}, false
	}

	m, err := h.Converter().Month(year, month)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return calendar.Month{}, false
	}
	return m, true
}

// UpsertYear handles PUT /api/v1/admin/years/{year}
//
// Replaces the month lengths of a year already in the table, or appends the
// year right after the last one. The new table is validated before it is
// stored, and the converter is swapped only after the write succeeds.
func (h *Handlers) UpsertYear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Year must be an integer")
		return
	}

	var req UpsertYearRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, validationMessage(err), CodeInvalidTable)
		return
	}
	if req.Source == "" {
		req.Source = "admin"
	}

	row := calendar.YearRow{Year: year}
	copy(row.Months[:], req.Months)

	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	cur := h.Converter()
	t := cur.Table()
	if year < t.FirstYear() || year > t.LastYear()+1 {
		WriteError(w, http.StatusConflict,
			fmt.Sprintf("Year %d must be within %d..%d", year, t.FirstYear(), t.LastYear()+1), CodeNotContiguous)
		return
	}

	rows, err := calendar.MergeRows(t.Rows(), []calendar.YearRow{row})
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	table, err := calendar.NewTable(rows)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	next, err := cur.WithTable(table)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	stored := database.CalendarYear{Year: row.Year, Months: row.Months, Source: req.Source}
	if err := h.db.ImportCalendarYears(ctx, database.RevisionUpsert, req.Source, []database.CalendarYear{stored}); err != nil {
		logger.Error(ctx, "failed to store calendar year", err, slog.Int("year", year))
		WriteInternalError(w, "Failed to store calendar year")
		return
	}

	h.converter.Store(next)
	h.metrics.tableReloaded(table)
	logger.Info(ctx, "calendar table updated",
		slog.Int("year", year),
		slog.String("source", req.Source),
		slog.Int("first_year", table.FirstYear()),
		slog.Int("last_year", table.LastYear()),
	)

	WriteSuccess(w, map[string]any{
		"year":       row.Year,
		"months":     row.Months,
		"days":       row.Days(),
		"first_year": table.FirstYear(),
		"last_year":  table.LastYear(),
	})
}

// GetYear handles GET /api/v1/admin/years/{year}
//
// Returns the stored row with its source and timestamps.
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Year must be an integer")
		return
	}

	stored, err := h.db.GetCalendarYear(r.Context(), year)
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, fmt.Sprintf("Year %d is not stored", year))
			return
		}
		logger.Error(r.Context(), "failed to get calendar year", err, slog.Int("year", year))
		WriteInternalError(w, "Failed to get calendar year")
		return
	}

	WriteSuccess(w, stored)
}

// DeleteYear handles DELETE /api/v1/admin/years/{year}
//
// Only the last year of the table can be removed, and never the anchor
// year, so the table stays contiguous.
func (h *Handlers) DeleteYear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Year must be an integer")
		return
	}
	source := r.URL.Query().Get("source")
	if source == "" {
		source = "admin"
	}

	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	cur := h.Converter()
	t := cur.Table()
	if !t.Contains(year) {
		WriteNotFound(w, fmt.Sprintf("Year %d is not in the table", year))
		return
	}
	if year != t.LastYear() || t.Len() == 1 {
		WriteError(w, http.StatusConflict,
			fmt.Sprintf("Only the last year (%d) can be removed", t.LastYear()), CodeNotContiguous)
		return
	}

	rows := t.Rows()
	table, err := calendar.NewTable(rows[:len(rows)-1])
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	next, err := cur.WithTable(table)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	if err := h.db.DeleteCalendarYear(ctx, year, source); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, fmt.Sprintf("Year %d is not stored", year))
			return
		}
		logger.Error(ctx, "failed to delete calendar year", err, slog.Int("year", year))
		WriteInternalError(w, "Failed to delete calendar year")
		return
	}

	h.converter.Store(next)
	h.metrics.tableReloaded(table)
	logger.Info(ctx, "calendar year removed",
		slog.Int("year", year),
		slog.String("source", source),
		slog.Int("last_year", table.LastYear()),
	)

	WriteSuccess(w, map[string]any{
		"year":       year,
		"first_year": table.FirstYear(),
		"last_year":  table.LastYear(),
	})
}

// NotFound answers unknown routes with the JSON error envelope.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteNotFound(w, fmt.Sprintf("No route for %s %s", r.Method, r.URL.Path))
}

// ListRevisions handles GET /api/v1/admin/revisions?limit=
func (h *Handlers) ListRevisions(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if l, err := strconv.Atoi(s); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	revs, err := h.db.GetRecentRevisions(r.Context(), limit)
	if err != nil {
		logger.Error(r.Context(), "failed to list revisions", err)
		WriteInternalError(w, "Failed to list revisions")
		return
	}
	if revs == nil {
		revs = []database.CalendarRevision{}
	}
	WriteSuccess(w, revs)
}

// =============================================================================
// Helpers
// =============================================================================

// writeCalendarError maps calendar sentinel errors to responses.
func (h *Handlers) writeCalendarError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, calendar.ErrInvalidDate):
		WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidDate)
	case errors.Is(err, calendar.ErrOutOfRange):
		WriteError(w, http.StatusNotFound, err.Error(), CodeOutOfRange)
	case errors.Is(err, calendar.ErrInvalidTable):
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), CodeInvalidTable)
	default:
		logger.Error(r.Context(), "calendar operation failed", err, slog.String("path", r.URL.Path))
		WriteInternalError(w, "Internal server error")
	}
}

// validationMessage flattens validator errors into one line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		if fe.Param() != "" {
			parts[i] = fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
		} else {
			parts[i] = fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}

// decodeJSON decodes a JSON request body, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
