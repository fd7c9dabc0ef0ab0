package response_models

// ImportResult summarizes a CSV import run. Skipped rows are reported,
// not fatal: a duplicate in the file should not abort the rest.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
