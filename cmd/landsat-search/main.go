// Command landsat-search queries the USGS Landsat STAC catalog and prints
// the matching scenes.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	landsat "github.com/robert-malhotra/go-landsat"
	"github.com/robert-malhotra/go-landsat/internal/config"
)

type searchFlags struct {
	limit          int
	cloudCover     int
	cloudCoverLand int
	wrsPath        string
	wrsRow         string
	collection     string
	platform       string
	sceneID        string
	itemID         string
	correction     string
	bbox           []float64
	bboxFile       string
	dateRange      string
	sortField      string
	sortOrder      string
	output         string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:           "landsat-search",
		Short:         "Search the USGS Landsat STAC catalog",
		Long:          "Search the USGS Landsat STAC catalog and print matching scenes.\nThe endpoint, timeout and logging are configured through LANDSAT_* and LOG_* environment variables.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), flags)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.limit, "limit", 0, "maximum scenes to return (default from config)")
	f.IntVar(&flags.cloudCover, "cloud-cover", -1, "maximum cloud cover percentage (0-100)")
	f.IntVar(&flags.cloudCoverLand, "cloud-cover-land", -1, "maximum land cloud cover percentage (0-100)")
	f.StringVar(&flags.wrsPath, "path", "", "WRS path (000-254)")
	f.StringVar(&flags.wrsRow, "row", "", "WRS row (000-247)")
	f.StringVar(&flags.collection, "collection", "", "collection (landsat-c1l1 or landsat-c2l1)")
	f.StringVar(&flags.platform, "platform", "", "platform identifier (e.g. LANDSAT_9)")
	f.StringVar(&flags.sceneID, "scene-id", "", "Landsat scene identifier")
	f.StringVar(&flags.itemID, "id", "", "STAC item identifier")
	f.StringVar(&flags.correction, "correction", "", "correction level (e.g. L1TP)")
	f.Float64SliceVar(&flags.bbox, "bbox", nil, "bounding box as west,south,east,north")
	f.StringVar(&flags.bboxFile, "bbox-file", "", "GeoJSON file whose first geometry bounds the search")
	f.StringVar(&flags.dateRange, "date-range", "", "acquisition date range as YYYY-MM-DD/YYYY-MM-DD")
	f.StringVar(&flags.sortField, "sort", "", "property to sort on (e.g. eo:cloud_cover)")
	f.StringVar(&flags.sortOrder, "order", "", "sort direction: asc or desc")
	f.StringVar(&flags.output, "output", "ids", "output format: ids, scene-ids or json")

	return cmd
}

func runSearch(ctx context.Context, flags *searchFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := setupLogger(cfg.Logging.Level, cfg.Logging.Format)

	limit := flags.limit
	if limit <= 0 {
		limit = cfg.Search.DefaultLimit
	}

	opts := landsat.SearchOptions{
		Limit:      limit,
		WRSPath:    flags.wrsPath,
		WRSRow:     flags.wrsRow,
		Collection: flags.collection,
		Platform:   flags.platform,
		SceneID:    flags.sceneID,
		ID:         flags.itemID,
		Correction: flags.correction,
		BBox:       flags.bbox,
		BBoxFile:   flags.bboxFile,
		DateRange:  flags.dateRange,
		SortField:  flags.sortField,
		SortOrder:  flags.sortOrder,
	}
	if flags.cloudCover >= 0 {
		v := flags.cloudCover
		opts.CloudCoverMax = &v
	}
	if flags.cloudCoverLand >= 0 {
		v := flags.cloudCoverLand
		opts.CloudCoverLandMax = &v
	}

	query, err := landsat.BuildQuery(opts)
	if err != nil {
		return err
	}

	client := landsat.NewClient(cfg.Search.URL, cfg.Search.Timeout).WithLogger(logger)

	result, err := client.Search(ctx, query)
	if err != nil {
		return err
	}

	results := landsat.NewResultSet(result)
	logger.Debug("search completed",
		"returned", results.Len(),
	)

	switch flags.output {
	case "ids":
		for _, id := range results.IDs() {
			fmt.Println(id)
		}
	case "scene-ids":
		for _, id := range results.SceneIDs() {
			fmt.Println(id)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results.ItemCollection()); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q, must be one of: ids, scene-ids, json", flags.output)
	}

	return nil
}

func setupLogger(level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
