package vector

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestFileBBox_FeatureCollection(t *testing.T) {
	path := writeFixture(t, "aoi.geojson", `{
		"type": "FeatureCollection",
		"features": [
			{
				"type": "Feature",
				"properties": {},
				"geometry": {
					"type": "Polygon",
					"coordinates": [[
						[121.0, 14.5], [121.2, 14.5], [121.2, 14.8], [121.0, 14.8], [121.0, 14.5]
					]]
				}
			},
			{
				"type": "Feature",
				"properties": {},
				"geometry": {"type": "Point", "coordinates": [0.0, 0.0]}
			}
		]
	}`)

	bbox, err := FileBBox(path)
	if err != nil {
		t.Fatalf("FileBBox failed: %v", err)
	}

	// Only the first geometry contributes.
	want := []float64{121.0, 14.5, 121.2, 14.8}
	if !reflect.DeepEqual(bbox, want) {
		t.Errorf("expected bbox %v, got %v", want, bbox)
	}
}

func TestFileBBox_Feature(t *testing.T) {
	path := writeFixture(t, "feature.geojson", `{
		"type": "Feature",
		"properties": {},
		"geometry": {
			"type": "LineString",
			"coordinates": [[10.0, -5.0], [12.5, 3.0]]
		}
	}`)

	bbox, err := FileBBox(path)
	if err != nil {
		t.Fatalf("FileBBox failed: %v", err)
	}

	want := []float64{10.0, -5.0, 12.5, 3.0}
	if !reflect.DeepEqual(bbox, want) {
		t.Errorf("expected bbox %v, got %v", want, bbox)
	}
}

func TestFileBBox_BareGeometry(t *testing.T) {
	path := writeFixture(t, "geom.geojson", `{
		"type": "Point",
		"coordinates": [121.07, 14.55]
	}`)

	bbox, err := FileBBox(path)
	if err != nil {
		t.Fatalf("FileBBox failed: %v", err)
	}

	want := []float64{121.07, 14.55, 121.07, 14.55}
	if !reflect.DeepEqual(bbox, want) {
		t.Errorf("expected bbox %v, got %v", want, bbox)
	}
}

func TestFileBBox_EmptyCollection(t *testing.T) {
	path := writeFixture(t, "empty.geojson", `{"type": "FeatureCollection", "features": []}`)

	if _, err := FileBBox(path); err == nil {
		t.Error("expected error for a collection without features")
	}
}

func TestFileBBox_NotJSON(t *testing.T) {
	path := writeFixture(t, "junk.geojson", "not geojson at all")

	if _, err := FileBBox(path); err == nil {
		t.Error("expected error for a non-JSON file")
	}
}

func TestFileBBox_MissingFile(t *testing.T) {
	if _, err := FileBBox(filepath.Join(t.TempDir(), "missing.geojson")); err == nil {
		t.Error("expected error for a missing file")
	}
}
