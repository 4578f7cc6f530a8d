package bioanalyzer

import "gonum.org/v1/gonum/stat"

// Summary is a numeric rollup of a collection of lengths or positions.
type Summary struct {
	Count int     `json:"count"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Mean  float64 `json:"mean"`
}

// Summarize rolls values up into count, min, max and mean. An empty input
// produces the zero Summary.
func Summarize(values []int) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{Count: len(values), Min: values[0], Max: values[0]}
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = stat.Mean(data, nil)

	return s
}
