package landsat

import (
	"fmt"
	"strconv"

	"github.com/robert-malhotra/go-landsat/vector"
)

// STAC property keys recognized by the typed setters.
const (
	propCloudCover     = "eo:cloud_cover"
	propCloudCoverLand = "landsat:cloud_cover_land"
	propWRSPath        = "landsat:wrs_path"
	propWRSRow         = "landsat:wrs_row"
	propSceneID        = "landsat:scene_id"
	propCorrection     = "landsat:correction"
	propCollection     = "collection"
	propPlatform       = "platform"
	propID             = "id"
	propShape          = "proj:shape"
)

// CloudCoverUnfiltered is the sentinel cloud cover value meaning "no
// filter"; setting it removes the filter instead of emitting lt 100.
const CloudCoverUnfiltered = 100

// Source-literal upper bounds for WRS grid values. The published WRS-2 grid
// tops out at path 251 and row 248, so path 252-254 pass validation here
// even though no scene will ever match them.
const (
	maxWRSPath = 254
	maxWRSRow  = 247
)

// Collections accepted by SetCollection.
var validCollections = []string{"landsat-c1l1", "landsat-c2l1"}

// Platforms accepted by SetPlatform. LANDSAT-7 is hyphenated in the
// catalog's vocabulary where every sibling uses an underscore.
var validPlatforms = []string{
	"LANDSAT_1", "LANDSAT_2", "LANDSAT_3", "LANDSAT_4", "LANDSAT_5",
	"LANDSAT_6", "LANDSAT-7", "LANDSAT_8", "LANDSAT_9",
}

// Query accumulates validated filter parameters and renders the JSON body
// for a POST to the search endpoint. The zero value is not usable; create
// one with NewQuery. A Query is not safe for concurrent use.
type Query struct {
	limit     int
	bbox      []float64
	dateRange string
	sortField string
	sortOrder string

	// filters holds typed-setter entries keyed by STAC property; manual
	// holds SetMetadata entries. Manual entries win at render time.
	filters map[string]any
	manual  map[string]any
}

// NewQuery creates a query builder limited to the given number of scenes.
func NewQuery(limit int) *Query {
	return &Query{
		limit:   limit,
		filters: make(map[string]any),
		manual:  make(map[string]any),
	}
}

// SortSpec is one entry of the rendered sort list.
type SortSpec struct {
	Field     string `json:"field"`
	Direction string `json:"direction,omitempty"`
}

// Document is the rendered search request body.
type Document struct {
	Limit int            `json:"limit"`
	BBox  []float64      `json:"bbox,omitempty"`
	Time  string         `json:"time,omitempty"`
	Query map[string]any `json:"query"`
	Sort  []SortSpec     `json:"sort,omitempty"`
}

func eqFilter(v any) map[string]any { return map[string]any{"eq": v} }
func ltFilter(v any) map[string]any { return map[string]any{"lt": v} }

// SetCloudCoverMax filters scenes to overall cloud cover below max percent.
// The sentinel value 100 disables the filter.
func (q *Query) SetCloudCoverMax(max int) error {
	return q.setCloudCover("cloud_cover_max", propCloudCover, max)
}

// SetCloudCoverLandMax filters scenes to land cloud cover below max
// percent. The sentinel value 100 disables the filter.
func (q *Query) SetCloudCoverLandMax(max int) error {
	return q.setCloudCover("cloud_cover_land_max", propCloudCoverLand, max)
}

func (q *Query) setCloudCover(field, key string, max int) error {
	if max < 0 || max > 100 {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("%d is not in the range 0-100", max)}
	}
	if max == CloudCoverUnfiltered {
		delete(q.filters, key)
		return nil
	}
	q.filters[key] = ltFilter(max)
	return nil
}

// SetWRSPath filters by WRS path. The value is zero-padded to three
// characters; valid paths are 000-254.
func (q *Query) SetWRSPath(path string) error {
	padded, err := padWRS("wrs_path", path, maxWRSPath)
	if err != nil {
		return err
	}
	q.filters[propWRSPath] = eqFilter(padded)
	return nil
}

// SetWRSRow filters by WRS row. The value is zero-padded to three
// characters; valid rows are 000-247.
func (q *Query) SetWRSRow(row string) error {
	padded, err := padWRS("wrs_row", row, maxWRSRow)
	if err != nil {
		return err
	}
	q.filters[propWRSRow] = eqFilter(padded)
	return nil
}

// padWRS zero-pads a WRS grid value to three characters and checks it
// against [0, max].
func padWRS(field, val string, max int) (string, error) {
	if val == "" || len(val) > 3 {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a 1-3 digit value", val)}
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not numeric", val)}
	}
	if n < 0 || n > max {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("%q is outside 000-%03d", val, max)}
	}
	return fmt.Sprintf("%03d", n), nil
}

// SetCollection filters by catalog collection.
func (q *Query) SetCollection(collection string) error {
	if !contains(validCollections, collection) {
		return &ValidationError{Field: "collection", Reason: fmt.Sprintf("%q is not a valid collection", collection)}
	}
	q.filters[propCollection] = eqFilter(collection)
	return nil
}

// SetPlatform filters by Landsat platform identifier.
func (q *Query) SetPlatform(platform string) error {
	if !contains(validPlatforms, platform) {
		return &ValidationError{Field: "platform", Reason: fmt.Sprintf("%q is not a valid platform", platform)}
	}
	q.filters[propPlatform] = eqFilter(platform)
	return nil
}

// SetSceneID filters by Landsat scene identifier. The value is not
// validated.
func (q *Query) SetSceneID(sceneID string) {
	q.filters[propSceneID] = eqFilter(sceneID)
}

// SetID filters by STAC item identifier. The value is not validated.
func (q *Query) SetID(id string) {
	q.filters[propID] = eqFilter(id)
}

// SetCorrection filters by correction level (e.g. L1TP). The value is not
// validated.
func (q *Query) SetCorrection(correction string) {
	q.filters[propCorrection] = eqFilter(correction)
}

// SetImageShape filters by the projected image shape in pixels.
func (q *Query) SetImageShape(shape []int) error {
	if len(shape) != 2 {
		return &ValidationError{Field: "image_shape", Reason: fmt.Sprintf("expected 2 values, got %d", len(shape))}
	}
	q.filters[propShape] = append([]int(nil), shape...)
	return nil
}

// SetSort orders results on a property. Order must be "asc", "desc" or ""
// (server default).
func (q *Query) SetSort(field, order string) error {
	if order != "" && order != "asc" && order != "desc" {
		return &ValidationError{Field: "sort_order", Reason: fmt.Sprintf("%q is not \"asc\" or \"desc\"", order)}
	}
	q.sortField = field
	q.sortOrder = order
	return nil
}

// SetBBox filters by a [west, south, east, north] bounding box.
func (q *Query) SetBBox(bbox []float64) error {
	if err := validateBBox(bbox); err != nil {
		return err
	}
	q.bbox = append([]float64(nil), bbox...)
	return nil
}

// SetBBoxFromFile filters by the bounding box of the first geometry in a
// GeoJSON vector file.
func (q *Query) SetBBoxFromFile(path string) error {
	bbox, err := vector.FileBBox(path)
	if err != nil {
		return fmt.Errorf("failed to read bounding box from %s: %w", path, err)
	}
	return q.SetBBox(bbox)
}

func validateBBox(bbox []float64) error {
	if len(bbox) != 4 {
		return &ValidationError{Field: "bbox", Reason: fmt.Sprintf("expected 4 coordinates, got %d", len(bbox))}
	}
	west, south, east, north := bbox[0], bbox[1], bbox[2], bbox[3]
	if west < -180 || west > 180 || east < -180 || east > 180 {
		return &ValidationError{Field: "bbox", Reason: "longitudes must be between -180 and 180"}
	}
	if south < -90 || south > 90 || north < -90 || north > 90 {
		return &ValidationError{Field: "bbox", Reason: "latitudes must be between -90 and 90"}
	}
	if west > east {
		return &ValidationError{Field: "bbox", Reason: fmt.Sprintf("west (%f) must not exceed east (%f)", west, east)}
	}
	if south > north {
		return &ValidationError{Field: "bbox", Reason: fmt.Sprintf("south (%f) must not exceed north (%f)", south, north)}
	}
	return nil
}

// SetDateRange filters by an acquisition date range. The value is
// forwarded verbatim as the document's time field, typically
// "YYYY-MM-DD/YYYY-MM-DD".
func (q *Query) SetDateRange(dateRange string) {
	q.dateRange = dateRange
}

// SetMetadata merges arbitrary query entries in bulk. No validation is
// performed; entries set here take precedence over typed setters for the
// same key at render time.
func (q *Query) SetMetadata(metadata map[string]any) {
	for k, v := range metadata {
		q.manual[k] = v
	}
}

// Generate renders the request body. The builder is not mutated, so
// repeated calls yield identical documents. Single-key comparison entries
// holding a nil value are dropped; multi-key comparison objects fail with
// ErrUnsupportedFilter.
func (q *Query) Generate() (*Document, error) {
	query := make(map[string]any, len(q.filters)+len(q.manual))
	for k, v := range q.filters {
		query[k] = v
	}
	for k, v := range q.manual {
		query[k] = v
	}

	for k, v := range query {
		cmp, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if len(cmp) > 1 {
			return nil, fmt.Errorf("filter %q: %w", k, ErrUnsupportedFilter)
		}
		for _, inner := range cmp {
			if inner == nil {
				delete(query, k)
			}
		}
	}

	doc := &Document{Limit: q.limit, Query: query}
	if len(q.bbox) == 4 {
		doc.BBox = append([]float64(nil), q.bbox...)
	}
	if q.dateRange != "" {
		doc.Time = q.dateRange
	}
	if q.sortField != "" {
		doc.Sort = []SortSpec{{Field: q.sortField, Direction: q.sortOrder}}
	}
	return doc, nil
}

func contains(list []string, val string) bool {
	for _, v := range list {
		if v == val {
			return true
		}
	}
	return false
}
