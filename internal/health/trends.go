package health

import "math"

type VitalStat struct {
	Count int     `json:"count"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Avg   float64 `json:"avg"`
}

type TrendSummary struct {
	HeartRate  *VitalStat `json:"heart_rate"`
	Systolic   *VitalStat `json:"bp_systolic"`
	Diastolic  *VitalStat `json:"bp_diastolic"`
	BloodSugar *VitalStat `json:"blood_sugar"`
}

// SummarizeTrend aggregates each vital over the readings that measured it.
func SummarizeTrend(readings []Reading) TrendSummary {
	collect := func(pick func(Reading) *int) *VitalStat {
		var stat *VitalStat
		sum := 0
		for _, reading := range readings {
			value := pick(reading)
			if value == nil {
				continue
			}
			if stat == nil {
				stat = &VitalStat{Min: *value, Max: *value}
			}
			stat.Count++
			sum += *value
			stat.Min = min(stat.Min, *value)
			stat.Max = max(stat.Max, *value)
		}
		if stat != nil {
			stat.Avg = math.Round(float64(sum)/float64(stat.Count)*10) / 10
		}
		return stat
	}

	return TrendSummary{
		HeartRate:  collect(func(r Reading) *int { return r.HeartRate }),
		Systolic:   collect(func(r Reading) *int { return r.Systolic }),
		Diastolic:  collect(func(r Reading) *int { return r.Diastolic }),
		BloodSugar: collect(func(r Reading) *int { return r.BloodSugar }),
	}
}
