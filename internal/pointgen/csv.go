package pointgen

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"kmeanselbow/internal/kmeans"
)

// LoadCSV reads points from the first two columns of a CSV file. The first
// row is skipped when header is true.
func LoadCSV(filename string, header bool) (kmeans.PointSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open file")
	}
	defer file.Close()

	pts, err := ReadCSV(file, header)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return pts, nil
}

// ReadCSV is LoadCSV for an arbitrary reader.
func ReadCSV(r io.Reader, header bool) (kmeans.PointSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rawData, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "unable to read csv")
	}

	var pts kmeans.PointSet
	for i, line := range rawData {
		if i == 0 && header {
			continue
		}
		if len(line) < 2 {
			return nil, errors.Errorf("line %d: need 2 columns, got %d", i+1, len(line))
		}
		var xy [2]float64
		for j, value := range line[:2] {
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: unable to parse value %q as float", i+1, value)
			}
			xy[j] = f
		}
		pts = append(pts, kmeans.Point{X: xy[0], Y: xy[1]})
	}
	return pts, nil
}
