// Package mockdata generates the climate series, alerts and vegetation
// observations the dashboard runs on. Nothing here comes from real imagery:
// the climate series is a closed-form drift plus bounded jitter around fixed
// per-region baselines, and alerts and vegetation points are literals.
package mockdata
