package landsat

import (
	"fmt"
	"sort"
	"strings"
)

// Asset names classified as angle coefficient files.
var coefficientFileNames = []string{"VAA", "VZA", "SAA", "SZA"}

// Asset names classified as metadata files.
var metadataFileNames = []string{"MTL.txt", "MTL.json", "MTL.xml", "ANG.txt"}

const thumbnailAssetName = "thumbnail"

// Scene is the parsed, typed view of one feature. Property fields are nil
// when absent from the response. The URL maps hold the landsatlook href per
// asset; the S3 variants hold the alternate.s3 mirror and omit assets
// without one.
type Scene struct {
	ID          string
	Description string
	BBox        []float64
	Geometry    *Geometry

	Timestamp          *string
	Platform           *string
	Instruments        []string
	CloudCover         *float64
	CloudCoverLand     *float64
	SunAzimuth         *float64
	SunElevation       *float64
	OffNadir           *float64
	WRSType            *string
	WRSPath            *string
	WRSRow             *string
	SceneID            *string
	CollectionCategory *string
	CollectionNumber   *string
	Correction         *string
	EPSG               *int
	Shape              []int

	// Spectral bands, keyed by band identifier (e.g. "B4").
	BandNames  map[string]string // band -> common name
	BandURLs   map[string]string
	BandS3URLs map[string]string

	// QA files, keyed by asset name.
	QANames  []string // asset titles, in asset-name order
	QAURLs   map[string]string
	QAS3URLs map[string]string

	// Angle coefficient files, keyed by asset name.
	CoeffNames  map[string]string // asset -> title
	CoeffURLs   map[string]string
	CoeffS3URLs map[string]string

	// Metadata files, keyed by file name.
	MetadataURLs   map[string]string
	MetadataS3URLs map[string]string

	Thumbnail string

	feature Feature
}

// NewScene parses a single feature into a Scene.
func NewScene(f Feature) *Scene {
	p := f.Properties
	s := &Scene{
		ID:          f.ID,
		Description: f.Description,
		BBox:        f.BBox,
		Geometry:    f.Geometry,

		Timestamp:          p.Datetime,
		Platform:           p.Platform,
		Instruments:        p.Instruments,
		CloudCover:         p.CloudCover,
		CloudCoverLand:     p.CloudCoverLand,
		SunAzimuth:         p.SunAzimuth,
		SunElevation:       p.SunElevation,
		OffNadir:           p.OffNadir,
		WRSType:            p.WRSType,
		WRSPath:            p.WRSPath,
		WRSRow:             p.WRSRow,
		SceneID:            p.SceneID,
		CollectionCategory: p.CollectionCategory,
		CollectionNumber:   p.CollectionNumber,
		Correction:         p.Correction,
		EPSG:               p.EPSG,
		Shape:              p.Shape,

		BandNames:      make(map[string]string),
		BandURLs:       make(map[string]string),
		BandS3URLs:     make(map[string]string),
		QAURLs:         make(map[string]string),
		QAS3URLs:       make(map[string]string),
		CoeffNames:     make(map[string]string),
		CoeffURLs:      make(map[string]string),
		CoeffS3URLs:    make(map[string]string),
		MetadataURLs:   make(map[string]string),
		MetadataS3URLs: make(map[string]string),

		feature: f,
	}
	s.loadAssets(f.Assets)
	return s
}

// loadAssets classifies each asset by name and content in a single pass.
// Asset names are visited in sorted order so QANames is deterministic.
func (s *Scene) loadAssets(assets map[string]Asset) {
	names := make([]string, 0, len(assets))
	for name := range assets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		asset := assets[name]

		if contains(coefficientFileNames, name) {
			s.CoeffNames[name] = asset.Title
			s.CoeffURLs[name] = asset.Href
			if s3 := asset.S3Href(); s3 != "" {
				s.CoeffS3URLs[name] = s3
			}
		}

		if contains(metadataFileNames, name) {
			s.MetadataURLs[name] = asset.Href
			if s3 := asset.S3Href(); s3 != "" {
				s.MetadataS3URLs[name] = s3
			}
		}

		if strings.Contains(name, "qa_") {
			s.QANames = append(s.QANames, asset.Title)
			s.QAURLs[name] = asset.Href
			if s3 := asset.S3Href(); s3 != "" {
				s.QAS3URLs[name] = s3
			}
		}

		if name == thumbnailAssetName {
			s.Thumbnail = asset.Href
		}

		if len(asset.EOBands) > 0 {
			band := asset.EOBands[0]
			s.BandNames[band.Name] = band.CommonName
			s.BandURLs[band.Name] = asset.Href
			if s3 := asset.S3Href(); s3 != "" {
				s.BandS3URLs[band.Name] = s3
			}
		}
	}
}

// ExpectedBands returns the full band list for the scene's platform. It
// fails with ErrPlatformUnrecognized when the platform is missing or has no
// known band table; the bands actually present are always in BandNames.
func (s *Scene) ExpectedBands() ([]string, error) {
	if s.Platform == nil {
		return nil, fmt.Errorf("scene has no platform property: %w", ErrPlatformUnrecognized)
	}
	return PlatformBands(*s.Platform)
}

// PlatformBands returns the spectral band identifiers carried by a
// platform. Only the OLI/TIRS platforms are known; any other platform code
// fails with ErrPlatformUnrecognized.
func PlatformBands(platform string) ([]string, error) {
	switch platform {
	case "LANDSAT_8", "LANDSAT_9":
		return []string{"B1", "B2", "B3", "B4", "B5", "B6", "B7", "B8", "B9", "B10", "B11"}, nil
	}
	return nil, fmt.Errorf("platform %q: %w", platform, ErrPlatformUnrecognized)
}
