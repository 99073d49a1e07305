// Package vector extracts bounding boxes from GeoJSON vector files.
package vector

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FileBBox returns the bounding box [minX, minY, maxX, maxY] of the first
// geometry in the GeoJSON document at path. FeatureCollection, Feature and
// bare Geometry documents are accepted.
func FileBBox(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vector file: %w", err)
	}
	geom, err := firstGeometry(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	b := geom.Bound()
	return []float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]}, nil
}

func firstGeometry(data []byte) (orb.Geometry, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("not valid JSON: %w", err)
	}

	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		if len(fc.Features) == 0 {
			return nil, fmt.Errorf("feature collection has no features")
		}
		if fc.Features[0].Geometry == nil {
			return nil, fmt.Errorf("first feature has no geometry")
		}
		return fc.Features[0].Geometry, nil

	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		if f.Geometry == nil {
			return nil, fmt.Errorf("feature has no geometry")
		}
		return f.Geometry, nil

	case "":
		return nil, fmt.Errorf("document has no GeoJSON type")

	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		return g.Geometry(), nil
	}
}
