package landsat

import (
	gostac "github.com/planetlabs/go-stac"
)

// StacVersion is the STAC spec version stamped on exported items.
const StacVersion = "1.0.0"

// ItemCollection is a GeoJSON FeatureCollection of exported STAC items.
type ItemCollection struct {
	Type           string         `json:"type"` // "FeatureCollection"
	Features       []*gostac.Item `json:"features"`
	NumberReturned int            `json:"numberReturned"`
}

// Item exports the scene as a standard STAC item. Properties that were
// absent from the response are omitted rather than emitted as null.
func (s *Scene) Item() *gostac.Item {
	item := &gostac.Item{
		Version:    StacVersion,
		Id:         s.ID,
		Collection: s.feature.Collection,
		Bbox:       s.BBox,
		Properties: make(map[string]any),
		Assets:     make(map[string]*gostac.Asset),
		Links:      make([]*gostac.Link, 0),
	}
	if s.Geometry != nil {
		item.Geometry = s.Geometry
	}

	setProp := func(key string, v any) { item.Properties[key] = v }
	if s.Timestamp != nil {
		setProp("datetime", *s.Timestamp)
	}
	if s.Platform != nil {
		setProp("platform", *s.Platform)
	}
	if len(s.Instruments) > 0 {
		setProp("instruments", s.Instruments)
	}
	if s.CloudCover != nil {
		setProp("eo:cloud_cover", *s.CloudCover)
	}
	if s.CloudCoverLand != nil {
		setProp("landsat:cloud_cover_land", *s.CloudCoverLand)
	}
	if s.SunAzimuth != nil {
		setProp("view:sun_azimuth", *s.SunAzimuth)
	}
	if s.SunElevation != nil {
		setProp("view:sun_elevation", *s.SunElevation)
	}
	if s.OffNadir != nil {
		setProp("view:off_nadir", *s.OffNadir)
	}
	if s.WRSType != nil {
		setProp("landsat:wrs_type", *s.WRSType)
	}
	if s.WRSPath != nil {
		setProp("landsat:wrs_path", *s.WRSPath)
	}
	if s.WRSRow != nil {
		setProp("landsat:wrs_row", *s.WRSRow)
	}
	if s.SceneID != nil {
		setProp("landsat:scene_id", *s.SceneID)
	}
	if s.CollectionCategory != nil {
		setProp("landsat:collection_category", *s.CollectionCategory)
	}
	if s.CollectionNumber != nil {
		setProp("landsat:collection_number", *s.CollectionNumber)
	}
	if s.Correction != nil {
		setProp("landsat:correction", *s.Correction)
	}
	if s.EPSG != nil {
		setProp("proj:epsg", *s.EPSG)
	}
	if len(s.Shape) > 0 {
		setProp("proj:shape", s.Shape)
	}

	for name, asset := range s.feature.Assets {
		item.Assets[name] = &gostac.Asset{
			Href:  asset.Href,
			Title: asset.Title,
			Type:  asset.Type,
			Roles: asset.Roles,
		}
	}

	return item
}

// ItemCollection exports every scene as a STAC item, preserving response
// order.
func (rs *ResultSet) ItemCollection() *ItemCollection {
	items := make([]*gostac.Item, 0, len(rs.Scenes))
	for _, s := range rs.Scenes {
		items = append(items, s.Item())
	}
	return &ItemCollection{
		Type:           "FeatureCollection",
		Features:       items,
		NumberReturned: len(items),
	}
}
