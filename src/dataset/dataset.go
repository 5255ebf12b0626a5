// Package dataset loads the tutorial's CSV tables into typed, immutable row
// slices. Parsing and column typing are delegated to gota dataframes; the
// typed slices exist so the render and animate packages never touch column
// names at run time.
package dataset

import (
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// Indicator is one country/year observation from the development table.
type Indicator struct {
	Country    string
	Region     string
	Year       int
	Income     float64
	LifeExp    float64
	Population float64
}

// Anomaly is one global temperature deviation observation.
type Anomaly struct {
	Year  int
	Value float64
}

// Simulation is one simulated temperature value tagged with the scenario
// ("natural" or "human") that produced it. Unknown scenario labels are kept
// as-is rather than dropped.
type Simulation struct {
	Year     int
	Value    float64
	Scenario string
}

// Indicators, Anomalies and Simulations are the loaded tables. Filters on
// them always return fresh slices; rows are never mutated after load.
type (
	Indicators  []Indicator
	Anomalies   []Anomaly
	Simulations []Simulation
)

// readFrame opens a CSV file as a gota dataframe and verifies the required
// columns are present.
func readFrame(path string, required []string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(err, "opening table")
	}
	defer f.Close()
	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return df, errors.Wrapf(df.Err, "parsing %s", path)
	}
	have := make(map[string]bool, len(df.Names()))
	for _, n := range df.Names() {
		have[n] = true
	}
	for _, col := range required {
		if !have[col] {
			return df, errors.Errorf("%s: missing required column %q", path, col)
		}
	}
	return df, nil
}

// numericColumn extracts a column as float64s, rejecting non-numeric cells
// with the row and column identified in the error.
func numericColumn(df dataframe.DataFrame, path, col string) ([]float64, error) {
	vals := df.Col(col).Float()
	for i, v := range vals {
		if math.IsNaN(v) {
			return nil, errors.Errorf("%s: row %d: non-numeric value in column %q", path, i+1, col)
		}
	}
	return vals, nil
}

// LoadIndicators reads the per-country development table
// (country,region,year,income,life_exp,population).
func LoadIndicators(path string) (Indicators, error) {
	df, err := readFrame(path, []string{"country", "region", "year", "income", "life_exp", "population"})
	if err != nil {
		return nil, err
	}
	return indicatorsFromFrame(df, path)
}

// LoadIndicatorsYear reads the development table pre-filtered to one exact
// year, pushing the comparison down into the dataframe.
func LoadIndicatorsYear(path string, year int) (Indicators, error) {
	df, err := readFrame(path, []string{"country", "region", "year", "income", "life_exp", "population"})
	if err != nil {
		return nil, err
	}
	sub := df.Filter(dataframe.F{Colname: "year", Comparator: series.Eq, Comparando: year})
	if sub.Err != nil {
		return nil, errors.Wrapf(sub.Err, "filtering %s to year %d", path, year)
	}
	return indicatorsFromFrame(sub, path)
}

func indicatorsFromFrame(df dataframe.DataFrame, path string) (Indicators, error) {
	n := df.Nrow()
	if n == 0 {
		return Indicators{}, nil
	}
	countries := df.Col("country").Records()
	regions := df.Col("region").Records()
	years, err := numericColumn(df, path, "year")
	if err != nil {
		return nil, err
	}
	incomes, err := numericColumn(df, path, "income")
	if err != nil {
		return nil, err
	}
	lifeExps, err := numericColumn(df, path, "life_exp")
	if err != nil {
		return nil, err
	}
	pops, err := numericColumn(df, path, "population")
	if err != nil {
		return nil, err
	}
	rows := make(Indicators, n)
	for i := 0; i < n; i++ {
		rows[i] = Indicator{
			Country:    countries[i],
			Region:     regions[i],
			Year:       int(years[i]),
			Income:     incomes[i],
			LifeExp:    lifeExps[i],
			Population: pops[i],
		}
	}
	return rows, nil
}

// LoadAnomalies reads the global temperature anomaly table (year,value).
func LoadAnomalies(path string) (Anomalies, error) {
	df, err := readFrame(path, []string{"year", "value"})
	if err != nil {
		return nil, err
	}
	n := df.Nrow()
	if n == 0 {
		return Anomalies{}, nil
	}
	years, err := numericColumn(df, path, "year")
	if err != nil {
		return nil, err
	}
	vals, err := numericColumn(df, path, "value")
	if err != nil {
		return nil, err
	}
	rows := make(Anomalies, n)
	for i := 0; i < n; i++ {
		rows[i] = Anomaly{Year: int(years[i]), Value: vals[i]}
	}
	return rows, nil
}

// LoadSimulations reads the simulated trajectory table (year,value,type).
func LoadSimulations(path string) (Simulations, error) {
	df, err := readFrame(path, []string{"year", "value", "type"})
	if err != nil {
		return nil, err
	}
	n := df.Nrow()
	if n == 0 {
		return Simulations{}, nil
	}
	years, err := numericColumn(df, path, "year")
	if err != nil {
		return nil, err
	}
	vals, err := numericColumn(df, path, "value")
	if err != nil {
		return nil, err
	}
	types := df.Col("type").Records()
	rows := make(Simulations, n)
	for i := 0; i < n; i++ {
		rows[i] = Simulation{Year: int(years[i]), Value: vals[i], Scenario: types[i]}
	}
	return rows, nil
}
