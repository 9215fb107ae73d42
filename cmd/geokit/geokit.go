package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/markdrayton/geokit/batch"
	"github.com/markdrayton/geokit/config"
	"github.com/markdrayton/geokit/geo"
)

var errUsage = errors.New("usage")

const usage = `usage: geokit [flags] <command> [args]

commands:
  distance LAT,LNG LAT,LNG         great-circle and rhumb-line distance, rhumb bearing
  destination LAT,LNG BEARING KM   point reached along a constant bearing
  bounds LAT,LNG...                box enclosing the points, its center
  contains NE SW LAT,LNG           whether the box NE/SW contains the point
  normalize LAT,LNG [BEARING]      coordinates wrapped into range
  batch FILE                       measure [{"from":[lat,lng],"to":[lat,lng]}, ...]

flags:
`

// report is what a command produced: lines for the terminal, v for --output.
type report struct {
	lines []string
	v     interface{}
}

type destinationReport struct {
	Start       geo.LatLng `json:"start"`
	Bearing     float64    `json:"bearing"`
	Km          float64    `json:"km"`
	Destination geo.LatLng `json:"destination"`
}

type boundsReport struct {
	NorthEast           geo.LatLng `json:"north_east"`
	SouthWest           geo.LatLng `json:"south_west"`
	Center              geo.LatLng `json:"center"`
	CrossesAntimeridian bool       `json:"crosses_antimeridian"`
}

type containsReport struct {
	Bounds   geo.Bounds `json:"bounds"`
	Point    geo.LatLng `json:"point"`
	Contains bool       `json:"contains"`
}

type normalizeReport struct {
	LatLng  geo.LatLng `json:"latlng"`
	Bearing *float64   `json:"bearing,omitempty"`
}

type geokit struct {
	p         *batch.Processor
	rf        *ResultFormatter
	precision int
	snapKm    float64
}

func (g *geokit) run(ctx context.Context, args []string) (report, error) {
	if len(args) == 0 {
		return report{}, errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "distance":
		return g.distance(ctx, args)
	case "destination":
		return g.destination(args)
	case "bounds":
		return g.bounds(ctx, args)
	case "contains":
		return g.contains(args)
	case "normalize":
		return g.normalize(args)
	case "batch":
		return g.batch(ctx, args)
	}
	return report{}, fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func (g *geokit) distance(ctx context.Context, args []string) (report, error) {
	points, err := parsePoints(args, 2)
	if err != nil {
		return report{}, err
	}
	results, err := g.p.Measure(ctx, []batch.Pair{{From: points[0], To: points[1]}})
	if err != nil {
		return report{}, err
	}
	return report{g.rf.Format(results), results[0]}, nil
}

func (g *geokit) destination(args []string) (report, error) {
	if len(args) != 3 {
		return report{}, fmt.Errorf("%w: destination takes LAT,LNG BEARING KM", errUsage)
	}
	start, err := geo.ParseLatLng(args[0])
	if err != nil {
		return report{}, err
	}
	bearing, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return report{}, fmt.Errorf("bad bearing %q: %w", args[1], err)
	}
	km, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return report{}, fmt.Errorf("bad distance %q: %w", args[2], err)
	}

	dest := geo.RhumbDestinationPoint(start, bearing, km)
	log.Debugf("rhumb destination from %s on %f for %fkm", start, bearing, km)
	return report{
		[]string{g.latlng(dest)},
		destinationReport{start, geo.NormalizeBearing(bearing), km, dest},
	}, nil
}

func (g *geokit) bounds(ctx context.Context, args []string) (report, error) {
	points, err := parsePoints(args, -1)
	if err != nil {
		return report{}, err
	}
	b, err := g.p.Bounds(ctx, points)
	if err != nil {
		return report{}, err
	}

	center := b.Center()
	if g.snapKm > 0 {
		center = geo.Snap(center, g.snapKm)
	}
	r := boundsReport{b.NorthEast(), b.SouthWest(), center, b.CrossesAntimeridian()}
	return report{
		[]string{
			"north-east  " + g.latlng(r.NorthEast),
			"south-west  " + g.latlng(r.SouthWest),
			"center      " + g.latlng(r.Center),
			"antimeridian " + strconv.FormatBool(r.CrossesAntimeridian),
		},
		r,
	}, nil
}

func (g *geokit) contains(args []string) (report, error) {
	points, err := parsePoints(args, 3)
	if err != nil {
		return report{}, err
	}
	b := geo.NewBounds(points[0], points[1])
	r := containsReport{b, points[2], b.ContainsPoint(points[2])}
	return report{[]string{strconv.FormatBool(r.Contains)}, r}, nil
}

func (g *geokit) normalize(args []string) (report, error) {
	if len(args) < 1 || len(args) > 2 {
		return report{}, fmt.Errorf("%w: normalize takes LAT,LNG [BEARING]", errUsage)
	}
	l, err := geo.ParseLatLng(args[0])
	if err != nil {
		return report{}, err
	}
	r := normalizeReport{LatLng: geo.LatLng{geo.NormalizeLat(l.Lat()), geo.NormalizeLng(l.Lng())}}
	lines := []string{g.latlng(r.LatLng)}
	if len(args) == 2 {
		b, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return report{}, fmt.Errorf("bad bearing %q: %w", args[1], err)
		}
		b = geo.NormalizeBearing(b)
		r.Bearing = &b
		lines = append(lines, g.float(b))
	}
	return report{lines, r}, nil
}

func (g *geokit) batch(ctx context.Context, args []string) (report, error) {
	if len(args) != 1 {
		return report{}, fmt.Errorf("%w: batch takes FILE", errUsage)
	}
	var pairs []batch.Pair
	if err := readJSON(args[0], &pairs); err != nil {
		return report{}, err
	}
	log.Debugf("measuring %d pairs on %d workers", len(pairs), g.p.Workers())
	results, err := g.p.Measure(ctx, pairs)
	if err != nil {
		return report{}, err
	}
	return report{g.rf.Format(results), results}, nil
}

func (g *geokit) float(f float64) string {
	return strconv.FormatFloat(f, 'f', g.precision, 64)
}

func (g *geokit) latlng(l geo.LatLng) string {
	return g.float(l.Lat()) + "," + g.float(l.Lng())
}

// parsePoints parses every arg as a LatLng. n < 0 accepts any non-zero count.
func parsePoints(args []string, n int) ([]geo.LatLng, error) {
	if (n >= 0 && len(args) != n) || len(args) == 0 {
		return nil, fmt.Errorf("%w: expected %d LAT,LNG arguments, got %d", errUsage, n, len(args))
	}
	points := make([]geo.LatLng, 0, len(args))
	for _, arg := range args {
		l, err := geo.ParseLatLng(arg)
		if err != nil {
			return nil, err
		}
		points = append(points, l)
	}
	return points, nil
}

func logMetrics(reg prometheus.Gatherer) {
	families, err := reg.Gather()
	if err != nil {
		log.Warnf("Couldn't gather metrics: %s", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := log.Fields{}
			for _, lp := range m.GetLabel() {
				fields[lp.GetName()] = lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				fields["value"] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				fields["count"] = m.GetHistogram().GetSampleCount()
				fields["sum"] = m.GetHistogram().GetSampleSum()
			case m.GetGauge() != nil:
				fields["value"] = m.GetGauge().GetValue()
			}
			log.WithFields(fields).Debug(mf.GetName())
		}
	}
}

func main() {
	configPath := flag.StringP("config", "c", "", "config file (default ~/.geokit/config.toml)")
	output := flag.StringP("output", "o", "", "write results as JSON to this file")
	workers := flag.IntP("workers", "w", 0, "batch workers (default from config)")
	noRhumb := flag.BoolP("no-rhumb", "R", false, "hide rhumb-line columns")
	snapKm := flag.Float64("snap-km", 0, "snap the bounds center down to a grid of this many km")
	verbose := flag.BoolP("verbose", "v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Warnf("%s, using defaults", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Couldn't load config: %s", err)
	}

	log.SetLevel(cfg.Level())
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *output != "" {
		cfg.Output = *output
	}

	reg := prometheus.NewRegistry()
	g := geokit{
		p:         batch.New(cfg.Workers, batch.NewMetrics(reg)),
		rf:        NewResultFormatter(columnOpts{rhumb: !*noRhumb, precision: cfg.Precision}),
		precision: cfg.Precision,
		snapKm:    *snapKm,
	}

	r, err := g.run(context.Background(), flag.Args())
	if errors.Is(err, errUsage) {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("fatal error: %s", err)
	}
	logMetrics(reg)

	if cfg.Output != "" {
		if err := writeJSON(cfg.Output, r.v); err != nil {
			os.Exit(1)
		}
		return
	}
	for _, line := range r.lines {
		fmt.Println(line)
	}
}
