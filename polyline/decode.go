// Package polyline reads the ordered point sequence of one centerline.
//
// Three encodings are understood:
//   - GeoJSON: a LineString geometry, or a Feature holding one
//   - WKT: LINESTRING or LINESTRING Z
//   - text: one point per line, "x y [z]" separated by spaces, tabs, commas
//     or semicolons
//
// Points without a Z coordinate are placed on the z = 0 plane. Non-finite
// coordinates are rejected.
package polyline

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/akmonengine/tortuosity/geometry"
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
)

type Format string

const (
	FORMAT_AUTO    Format = "auto"
	FORMAT_GEOJSON Format = "geojson"
	FORMAT_WKT     Format = "wkt"
	FORMAT_TEXT    Format = "text"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FORMAT_AUTO, FORMAT_GEOJSON, FORMAT_WKT, FORMAT_TEXT:
		return f, nil
	case "":
		return FORMAT_AUTO, nil
	default:
		return "", errors.Errorf("unknown polyline format %q", s)
	}
}

// Detect guesses the format of data from its first characters
func Detect(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("{")):
		return FORMAT_GEOJSON
	case len(trimmed) >= len("LINESTRING") && strings.EqualFold(string(trimmed[:len("LINESTRING")]), "LINESTRING"):
		return FORMAT_WKT
	default:
		return FORMAT_TEXT
	}
}

// Decode reads every point of r
func Decode(r io.Reader, format Format) ([]geometry.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading polyline")
	}

	if format == FORMAT_AUTO || format == "" {
		format = Detect(data)
	}

	switch format {
	case FORMAT_GEOJSON:
		return DecodeGeoJSON(data)
	case FORMAT_WKT:
		return DecodeWKT(string(data))
	case FORMAT_TEXT:
		return DecodeText(bytes.NewReader(data))
	default:
		return nil, errors.Errorf("unknown polyline format %q", format)
	}
}

// DecodeGeoJSON reads a LineString geometry or a Feature wrapping one
func DecodeGeoJSON(data []byte) ([]geometry.Point, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errors.Wrap(err, "decoding GeoJSON")
	}

	var g geom.T
	if envelope.Type == "Feature" {
		var feature geojson.Feature
		if err := feature.UnmarshalJSON(data); err != nil {
			return nil, errors.Wrap(err, "decoding GeoJSON feature")
		}
		g = feature.Geometry
	} else if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrap(err, "decoding GeoJSON geometry")
	}

	return fromGeometry(g)
}

// DecodeWKT reads a LINESTRING
func DecodeWKT(s string) ([]geometry.Point, error) {
	g, err := wkt.Unmarshal(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrap(err, "decoding WKT")
	}
	return fromGeometry(g)
}

func fromGeometry(g geom.T) ([]geometry.Point, error) {
	lineString, ok := g.(*geom.LineString)
	if !ok {
		return nil, errors.Errorf("expected a LineString, got %T", g)
	}

	zIndex := lineString.Layout().ZIndex()
	points := make([]geometry.Point, lineString.NumCoords())
	for i := range points {
		coord := lineString.Coord(i)
		points[i] = geometry.Point{coord.X(), coord.Y(), 0}
		if zIndex >= 0 {
			points[i][2] = coord[zIndex]
		}
		if !isFinite(points[i]) {
			return nil, errors.Errorf("coordinate %d: non-finite value in %v", i, coord)
		}
	}
	return points, nil
}

// DecodeText reads one point per line. Blank lines and lines starting with
// '#' are skipped.
func DecodeText(r io.Reader) ([]geometry.Point, error) {
	var points []geometry.Point

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		if len(fields) < 2 || len(fields) > 3 {
			return nil, errors.Errorf("line %d: expected 2 or 3 coordinates, got %d", line, len(fields))
		}

		var point geometry.Point
		for i, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			point[i] = value
		}
		if !isFinite(point) {
			return nil, errors.Errorf("line %d: non-finite coordinate", line)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polyline")
	}

	return points, nil
}

func isFinite(p geometry.Point) bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
