package model

// PlayerAggregates holds totals and per-game averages over a set of
// statistics. This is a read-only query result shape and is never persisted.
type PlayerAggregates struct {
	GameCount    int     `json:"game_count"`
	TotalGoals   int     `json:"total_goals"`
	TotalAssists int     `json:"total_assists"`
	TotalMinutes int     `json:"total_minutes"`
	AvgGoals     float64 `json:"avg_goals"`
	AvgAssists   float64 `json:"avg_assists"`
	AvgMinutes   float64 `json:"avg_minutes"`
}

// AggregateStatistics computes totals and averages over the given records.
// An empty input yields the zero value: every average is 0, never NaN.
func AggregateStatistics(stats []PlayerStatistic) PlayerAggregates {
	agg := PlayerAggregates{GameCount: len(stats)}
	for _, s := range stats {
		agg.TotalGoals += s.Goals
		agg.TotalAssists += s.Assists
		agg.TotalMinutes += s.MinutesPlayed
	}
	if agg.GameCount == 0 {
		return agg
	}
	n := float64(agg.GameCount)
	agg.AvgGoals = float64(agg.TotalGoals) / n
	agg.AvgAssists = float64(agg.TotalAssists) / n
	agg.AvgMinutes = float64(agg.TotalMinutes) / n
	return agg
}
