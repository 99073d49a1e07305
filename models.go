package landsat

import "encoding/json"

// FeatureCollection represents the sat-api search response, a GeoJSON-like
// FeatureCollection plus a paging metadata block.
type FeatureCollection struct {
	Type     string    `json:"type"` // "FeatureCollection"
	Features []Feature `json:"features"`
	Meta     *Meta     `json:"meta,omitempty"`
}

// Meta carries the sat-api paging block.
type Meta struct {
	Page     int `json:"page"`
	Limit    int `json:"limit"`
	Found    int `json:"found"`
	Returned int `json:"returned"`
}

// Feature is one scene record in a search response.
type Feature struct {
	Type        string           `json:"type"` // "Feature"
	ID          string           `json:"id"`
	Collection  string           `json:"collection,omitempty"`
	BBox        []float64        `json:"bbox,omitempty"`
	Geometry    *Geometry        `json:"geometry"`
	Description string           `json:"description,omitempty"`
	Properties  Properties       `json:"properties"`
	Assets      map[string]Asset `json:"assets"`
}

// Geometry represents a GeoJSON geometry.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Properties contains scene-level metadata. Optional fields are pointers;
// nil means the property was absent from the response.
type Properties struct {
	Datetime    *string  `json:"datetime"`
	Platform    *string  `json:"platform"`
	Instruments []string `json:"instruments"`

	// EO extension
	CloudCover *float64 `json:"eo:cloud_cover"`

	// View extension
	SunAzimuth   *float64 `json:"view:sun_azimuth"`
	SunElevation *float64 `json:"view:sun_elevation"`
	OffNadir     *float64 `json:"view:off_nadir"`

	// Landsat extension
	CloudCoverLand     *float64 `json:"landsat:cloud_cover_land"`
	WRSType            *string  `json:"landsat:wrs_type"`
	WRSPath            *string  `json:"landsat:wrs_path"`
	WRSRow             *string  `json:"landsat:wrs_row"`
	SceneID            *string  `json:"landsat:scene_id"`
	CollectionCategory *string  `json:"landsat:collection_category"`
	CollectionNumber   *string  `json:"landsat:collection_number"`
	Correction         *string  `json:"landsat:correction"`

	// Projection extension
	EPSG  *int  `json:"proj:epsg"`
	Shape []int `json:"proj:shape"`
}

// Asset is one named file attached to a scene.
type Asset struct {
	Href      string     `json:"href"`
	Title     string     `json:"title,omitempty"`
	Type      string     `json:"type,omitempty"`
	Roles     []string   `json:"roles,omitempty"`
	EOBands   []Band     `json:"eo:bands,omitempty"`
	Alternate *Alternate `json:"alternate,omitempty"`
}

// Band is one entry of an asset's eo:bands list.
type Band struct {
	Name       string `json:"name"`
	CommonName string `json:"common_name,omitempty"`
}

// Alternate lists mirror locations for an asset.
type Alternate struct {
	S3 *AlternateLink `json:"s3,omitempty"`
}

// AlternateLink is a single mirror location.
type AlternateLink struct {
	Href string `json:"href"`
}

// S3Href returns the asset's S3 mirror URL, or "" when none is listed.
func (a Asset) S3Href() string {
	if a.Alternate == nil || a.Alternate.S3 == nil {
		return ""
	}
	return a.Alternate.S3.Href
}
