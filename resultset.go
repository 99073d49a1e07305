package landsat

import "fmt"

// ResultSet is an ordered, fixed-length view of a search response, one
// Scene per feature in response order. Aggregates are computed once at
// construction and the set is never mutated afterwards; ranging over
// Scenes restarts from the first element each time.
type ResultSet struct {
	Scenes []*Scene

	meta           *Meta
	ids            []string
	sceneIDs       []string
	cloudCover     []float64
	cloudCoverLand []float64
}

// NewResultSet parses every feature of a search response. The response is
// taken as delivered; in particular any server-side sort order is
// preserved, never re-applied.
func NewResultSet(fc *FeatureCollection) *ResultSet {
	rs := &ResultSet{}
	if fc == nil {
		return rs
	}
	rs.meta = fc.Meta
	rs.Scenes = make([]*Scene, 0, len(fc.Features))
	for _, f := range fc.Features {
		s := NewScene(f)
		rs.Scenes = append(rs.Scenes, s)
		rs.ids = append(rs.ids, s.ID)
		if s.SceneID != nil {
			rs.sceneIDs = append(rs.sceneIDs, *s.SceneID)
		}
		if s.CloudCover != nil {
			rs.cloudCover = append(rs.cloudCover, *s.CloudCover)
		}
		if s.CloudCoverLand != nil {
			rs.cloudCoverLand = append(rs.cloudCoverLand, *s.CloudCoverLand)
		}
	}
	return rs
}

// Len returns the number of scenes, equal to the number of features in the
// source response.
func (rs *ResultSet) Len() int { return len(rs.Scenes) }

// Scene returns the scene at index i, or a wrapped ErrIndexOutOfRange.
func (rs *ResultSet) Scene(i int) (*Scene, error) {
	if i < 0 || i >= len(rs.Scenes) {
		return nil, fmt.Errorf("index %d with length %d: %w", i, len(rs.Scenes), ErrIndexOutOfRange)
	}
	return rs.Scenes[i], nil
}

// Meta returns the response's paging block, or nil when absent.
func (rs *ResultSet) Meta() *Meta { return rs.meta }

// IDs returns every feature id, in response order.
func (rs *ResultSet) IDs() []string { return rs.ids }

// SceneIDs returns the landsat:scene_id of every scene that has one, in
// response order.
func (rs *ResultSet) SceneIDs() []string { return rs.sceneIDs }

// CloudCover returns the eo:cloud_cover of every scene that has one, in
// response order.
func (rs *ResultSet) CloudCover() []float64 { return rs.cloudCover }

// CloudCoverLand returns the landsat:cloud_cover_land of every scene that
// has one, in response order.
func (rs *ResultSet) CloudCoverLand() []float64 { return rs.cloudCoverLand }
