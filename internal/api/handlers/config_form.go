package handlers

import (
	_ "embed"
	"html/template"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"fleet-location-service/internal/domain"
	"fleet-location-service/internal/ports"
	"fleet-location-service/internal/services"

	"go.uber.org/zap"
)

//go:embed config_form.gohtml
var configFormHTML string

var configFormTmpl = template.Must(template.New("config_form").Parse(configFormHTML))

// ConfigFormHandler renders the configuration page and applies form edits.
type ConfigFormHandler struct {
	Store  ports.ConfigStore
	Logger *zap.Logger
	// Mirrors the service auth mode so the page shows the right endpoint docs.
	AuthRequired bool
}

type mappingView struct {
	Index int
	Plate string
	City  string
}

type formView struct {
	Cfg          domain.Configuration
	Mappings     []mappingView
	CityNames    []string
	AuthRequired bool
}

// Show handles GET /: the form pre-filled from the current configuration.
func (h *ConfigFormHandler) Show(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Store.Load(r.Context())
	if err != nil {
		h.Logger.Error("load config failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Map iteration order is random; sort plates so the form stays stable
	// across reloads.
	plates := make([]string, 0, len(cfg.PlateMappings))
	for p := range cfg.PlateMappings {
		plates = append(plates, p)
	}
	sort.Strings(plates)

	view := formView{
		Cfg:          cfg,
		Mappings:     make([]mappingView, 0, len(plates)),
		CityNames:    make([]string, 0, len(cfg.Locations)),
		AuthRequired: h.AuthRequired,
	}
	for i, p := range plates {
		view.Mappings = append(view.Mappings, mappingView{Index: i, Plate: p, City: cfg.PlateMappings[p]})
	}
	for _, loc := range cfg.Locations {
		view.CityNames = append(view.CityNames, loc.Name)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := configFormTmpl.Execute(w, view); err != nil {
		h.Logger.Error("render config form failed", zap.Error(err))
	}
}

// Update handles POST /update-config: parses the index-suffixed field set,
// applies the edit batch and persists the result. Any validation or save
// failure aborts the whole edit with a plain-text 500.
func (h *ConfigFormHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error updating configuration: "+err.Error(), http.StatusInternalServerError)
		return
	}

	current, err := h.Store.Load(r.Context())
	if err != nil {
		http.Error(w, "Error updating configuration: "+err.Error(), http.StatusInternalServerError)
		return
	}

	batch := batchFromForm(r.PostForm)

	next, err := services.ApplyEdits(current, batch)
	if err != nil {
		h.Logger.Warn("config edit rejected", zap.Error(err))
		http.Error(w, "Error updating configuration: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.Store.Save(r.Context(), next); err != nil {
		h.Logger.Error("save config failed", zap.Error(err))
		http.Error(w, "Error updating configuration: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// batchFromForm flattens the index-suffixed field set into an EditBatch.
// Indices may be sparse (the client script deletes rows without renumbering),
// so entries are collected by suffix rather than counted up from zero.
func batchFromForm(form url.Values) services.EditBatch {
	batch := services.EditBatch{
		ResponseFormat:   form.Get("response_format"),
		IncludeTimestamp: form.Get("include_timestamp") == "true",
		MaxLocations:     form.Get("max_locations_per_request"),
	}

	for _, i := range sortedIndexes(form, "api_key_") {
		batch.APIKeys = append(batch.APIKeys, form.Get("api_key_"+strconv.Itoa(i)))
	}

	for _, i := range sortedIndexes(form, "plate_number_", "plate_city_") {
		suffix := strconv.Itoa(i)
		batch.Mappings = append(batch.Mappings, services.MappingRow{
			Plate: form.Get("plate_number_" + suffix),
			City:  form.Get("plate_city_" + suffix),
		})
	}

	for _, i := range sortedIndexes(form, "location_name_", "location_lat_", "location_lng_", "location_country_") {
		suffix := strconv.Itoa(i)
		batch.Locations = append(batch.Locations, services.LocationRow{
			Name:    form.Get("location_name_" + suffix),
			Lat:     form.Get("location_lat_" + suffix),
			Lng:     form.Get("location_lng_" + suffix),
			Country: form.Get("location_country_" + suffix),
		})
	}

	return batch
}

// sortedIndexes returns the union of numeric suffixes present for any of the
// given prefixes, ascending.
func sortedIndexes(form url.Values, prefixes ...string) []int {
	seen := map[int]struct{}{}
	for key := range form {
		for _, prefix := range prefixes {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			if i, err := strconv.Atoi(key[len(prefix):]); err == nil {
				seen[i] = struct{}{}
			}
		}
	}

	indexes := make([]int, 0, len(seen))
	for i := range seen {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	return indexes
}
