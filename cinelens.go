// Package cinelens analyzes movie ratings datasets.
//
// Usage:
//
//	import "github.com/cinelens-org/cinelens/report"
//
//	summary, err := report.Run(report.Params{
//	    DataPath:  "movies.csv",
//	    OutputDir: "out",
//	    TopN:      5,
//	})
//
// The pipeline loads a CSV of movie records (synthesizing a sample dataset
// when the file is missing), cleans it, splits multi-genre rows, aggregates
// mean rating per genre and release counts per year, and writes the result
// tables as CSV files, a SQLite report database, and PNG charts.
//
// Every run is a fresh batch — nothing persists between runs beyond the
// output artifacts.
package cinelens
