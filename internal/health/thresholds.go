package health

import "errors"

var (
	ErrHeartRateBounds  = errors.New("heart rate min must be less than max")
	ErrBloodSugarBounds = errors.New("blood sugar min must be less than max")
)

// Thresholds are the per-user alert bounds.
type Thresholds struct {
	HeartRateMin      int  `json:"heart_rate_min"`
	HeartRateMax      int  `json:"heart_rate_max"`
	HeartRateEnabled  bool `json:"heart_rate_enabled"`
	SystolicMax       int  `json:"bp_systolic_max"`
	DiastolicMax      int  `json:"bp_diastolic_max"`
	BPEnabled         bool `json:"bp_enabled"`
	BloodSugarMin     int  `json:"blood_sugar_min"`
	BloodSugarMax     int  `json:"blood_sugar_max"`
	BloodSugarEnabled bool `json:"blood_sugar_enabled"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		HeartRateMin:      60,
		HeartRateMax:      100,
		HeartRateEnabled:  true,
		SystolicMax:       140,
		DiastolicMax:      90,
		BPEnabled:         true,
		BloodSugarMin:     70,
		BloodSugarMax:     140,
		BloodSugarEnabled: true,
	}
}

func (thresholds Thresholds) Validate() error {
	if thresholds.HeartRateMin >= thresholds.HeartRateMax {
		return ErrHeartRateBounds
	}
	if thresholds.BloodSugarMin >= thresholds.BloodSugarMax {
		return ErrBloodSugarBounds
	}
	return nil
}

// ThresholdPatch is a partial update; nil fields take the default value.
type ThresholdPatch struct {
	HeartRateMin      *int  `json:"heart_rate_min"`
	HeartRateMax      *int  `json:"heart_rate_max"`
	HeartRateEnabled  *bool `json:"heart_rate_enabled"`
	SystolicMax       *int  `json:"bp_systolic_max"`
	DiastolicMax      *int  `json:"bp_diastolic_max"`
	BPEnabled         *bool `json:"bp_enabled"`
	BloodSugarMin     *int  `json:"blood_sugar_min"`
	BloodSugarMax     *int  `json:"blood_sugar_max"`
	BloodSugarEnabled *bool `json:"blood_sugar_enabled"`
}

func (patch ThresholdPatch) Resolve() Thresholds {
	resolved := DefaultThresholds()
	setInt(&resolved.HeartRateMin, patch.HeartRateMin)
	setInt(&resolved.HeartRateMax, patch.HeartRateMax)
	setBool(&resolved.HeartRateEnabled, patch.HeartRateEnabled)
	setInt(&resolved.SystolicMax, patch.SystolicMax)
	setInt(&resolved.DiastolicMax, patch.DiastolicMax)
	setBool(&resolved.BPEnabled, patch.BPEnabled)
	setInt(&resolved.BloodSugarMin, patch.BloodSugarMin)
	setInt(&resolved.BloodSugarMax, patch.BloodSugarMax)
	setBool(&resolved.BloodSugarEnabled, patch.BloodSugarEnabled)
	return resolved
}

func setInt(target *int, value *int) {
	if value != nil {
		*target = *value
	}
}

func setBool(target *bool, value *bool) {
	if value != nil {
		*target = *value
	}
}
