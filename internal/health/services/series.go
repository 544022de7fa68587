package services

import (
	"sort"
	"time"

	"github.com/c14220110/healthcheck-backend/internal/health/models"
	"github.com/c14220110/healthcheck-backend/pkg/utils"
)

const oneDay = 24 * time.Hour

// DefaultPeriod dipakai bila token periode kosong atau tidak dikenal.
const DefaultPeriod = "1w"

var periodDurations = map[string]time.Duration{
	"1w": 7 * oneDay,
	"2w": 14 * oneDay,
	"1m": 30 * oneDay,
	"3m": 12 * 7 * oneDay,
	"1y": 52 * 7 * oneDay,
}

// PeriodDuration memetakan token periode ke panjang jendela. Token yang tidak dikenal
// diterima dan jatuh ke jendela default.
func PeriodDuration(period string) time.Duration {
	if d, ok := periodDurations[period]; ok {
		return d
	}
	return periodDurations[DefaultPeriod]
}

// SeriesWindow menghitung jendela [start, end]: end = now (UTC) + 1 hari.
func SeriesWindow(now time.Time, period string) (time.Time, time.Time) {
	end := now.UTC().Add(oneDay)
	return end.Add(-PeriodDuration(period)), end
}

// SeriesLabels menghasilkan satu label YYYY-MM-DD per hari, berjalan dari start
// (inklusif) sampai end (eksklusif) di zona tampilan.
func SeriesLabels(start, end time.Time) []string {
	var labels []string
	for cur := start.In(utils.DisplayLocation); cur.Before(end); cur = cur.Add(oneDay) {
		labels = append(labels, cur.Format(utils.DateLayout))
	}
	return labels
}

// BuildSeries mengisi deret suhu karyawan dan rata-rata harian seluruh karyawan.
// Untuk deret karyawan, submission pertama (urut waktu naik) di hari itu yang dipakai.
// Entri pertama ketiga deret selalu dibuang.
func BuildSeries(start, end time.Time, own, all []models.Submission) models.TemperatureSeries {
	labels := SeriesLabels(start, end)

	own = sortedByTime(own)
	ownByDay := make(map[string]float64, len(own))
	for _, sub := range own {
		key := utils.DisplayDate(sub.SubmittedAt)
		if _, ok := ownByDay[key]; !ok {
			ownByDay[key] = sub.Temperature
		}
	}

	type acc struct {
		sum   float64
		count int
	}
	avgByDay := make(map[string]*acc)
	for _, sub := range all {
		key := utils.DisplayDate(sub.SubmittedAt)
		a, ok := avgByDay[key]
		if !ok {
			a = &acc{}
			avgByDay[key] = a
		}
		a.sum += sub.Temperature
		a.count++
	}

	series := models.TemperatureSeries{
		Labels:  make([]string, 0, len(labels)),
		Data:    make([]*float64, 0, len(labels)),
		Average: make([]*float64, 0, len(labels)),
	}
	for _, label := range labels {
		series.Labels = append(series.Labels, label)

		var value *float64
		if t, ok := ownByDay[label]; ok {
			v := t
			value = &v
		}
		series.Data = append(series.Data, value)

		var avg *float64
		if a, ok := avgByDay[label]; ok && a.count > 0 {
			v := a.sum / float64(a.count)
			avg = &v
		}
		series.Average = append(series.Average, avg)
	}

	if len(series.Labels) > 0 {
		series.Labels = series.Labels[1:]
		series.Data = series.Data[1:]
		series.Average = series.Average[1:]
	}
	return series
}

func sortedByTime(subs []models.Submission) []models.Submission {
	out := make([]models.Submission, len(subs))
	copy(out, subs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out
}
