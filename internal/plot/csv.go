package plot

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"

	apperrors "option-calc/internal/errors"
	"option-calc/internal/optimizer"
)

// csvPoint is one exported sweep row. Profit is exported as a
// percentage to match what the chart and the console report show.
type csvPoint struct {
	Strike        float64 `csv:"strike"`
	ProfitPercent float64 `csv:"profit_percent"`
}

// WriteCSV exports the reportable sweep points to w.
func WriteCSV(w io.Writer, res *optimizer.Result) error {
	var rows []*csvPoint
	for it := res.Points(); ; {
		pt, ok := it.Next()
		if !ok {
			break
		}
		rows = append(rows, &csvPoint{
			Strike:        pt.Strike,
			ProfitPercent: pt.ProfitRatio * 100,
		})
	}
	return gocsv.Marshal(&rows, w)
}

// WriteCSVFile exports the reportable sweep points to the named file.
func WriteCSVFile(path string, res *optimizer.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if err := WriteCSV(f, res); err != nil {
		return apperrors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
