package landsat

// DefaultLimit is the number of scenes returned when no limit is given.
const DefaultLimit = 10

// SearchOptions mirrors the Query setters for one-shot construction.
// Pointer and zero-valued fields are skipped, so the zero value builds a
// query with nothing but the default limit.
type SearchOptions struct {
	Limit int

	CloudCoverMax     *int
	CloudCoverLandMax *int

	WRSPath string
	WRSRow  string

	Collection string
	Platform   string
	SceneID    string
	ID         string
	Correction string
	ImageShape []int

	BBox     []float64
	BBoxFile string

	DateRange string

	SortField string
	SortOrder string

	// Metadata entries are merged unvalidated and win over typed fields.
	Metadata map[string]any
}

// BuildQuery applies every provided option to a fresh Query. The first
// invalid value aborts construction; no partially built query is returned.
func BuildQuery(opts SearchOptions) (*Query, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := NewQuery(limit)

	if opts.CloudCoverMax != nil {
		if err := q.SetCloudCoverMax(*opts.CloudCoverMax); err != nil {
			return nil, err
		}
	}
	if opts.CloudCoverLandMax != nil {
		if err := q.SetCloudCoverLandMax(*opts.CloudCoverLandMax); err != nil {
			return nil, err
		}
	}
	if opts.WRSPath != "" {
		if err := q.SetWRSPath(opts.WRSPath); err != nil {
			return nil, err
		}
	}
	if opts.WRSRow != "" {
		if err := q.SetWRSRow(opts.WRSRow); err != nil {
			return nil, err
		}
	}
	if opts.Collection != "" {
		if err := q.SetCollection(opts.Collection); err != nil {
			return nil, err
		}
	}
	if opts.Platform != "" {
		if err := q.SetPlatform(opts.Platform); err != nil {
			return nil, err
		}
	}
	if opts.SceneID != "" {
		q.SetSceneID(opts.SceneID)
	}
	if opts.ID != "" {
		q.SetID(opts.ID)
	}
	if opts.Correction != "" {
		q.SetCorrection(opts.Correction)
	}
	if opts.ImageShape != nil {
		if err := q.SetImageShape(opts.ImageShape); err != nil {
			return nil, err
		}
	}
	if opts.BBox != nil {
		if err := q.SetBBox(opts.BBox); err != nil {
			return nil, err
		}
	}
	if opts.BBoxFile != "" {
		if err := q.SetBBoxFromFile(opts.BBoxFile); err != nil {
			return nil, err
		}
	}
	if opts.DateRange != "" {
		q.SetDateRange(opts.DateRange)
	}
	if opts.SortField != "" || opts.SortOrder != "" {
		if err := q.SetSort(opts.SortField, opts.SortOrder); err != nil {
			return nil, err
		}
	}
	if opts.Metadata != nil {
		q.SetMetadata(opts.Metadata)
	}

	return q, nil
}
