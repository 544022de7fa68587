package models

// TemperatureSeries berisi tiga deret paralel dengan panjang yang sama.
type TemperatureSeries struct {
	Labels  []string   `json:"labels"`
	Data    []*float64 `json:"data"`
	Average []*float64 `json:"average"`
}
