package hydraulics

// RainVolume returns the runoff volume (L) of a design storm.
//
//	volume = intensity (L/s/m²) × area (m²) × 60 × duration (min) × runoff
func RainVolume(intensity, area, durationMin, runoff float64) (float64, error) {
	if err := positive("rainfall intensity", intensity); err != nil {
		return 0, err
	}
	if err := positive("catchment area", area); err != nil {
		return 0, err
	}
	if err := positive("rain duration", durationMin); err != nil {
		return 0, err
	}
	if err := fraction("runoff coefficient", runoff); err != nil {
		return 0, err
	}
	return intensity * area * SecondsPerMinute * durationMin * runoff, nil
}

// RequiredFlow returns the peak flow (L/s) the oil-water separator and the
// pipes feeding it must carry. The storm volume is spread back over its
// duration, so the result equals intensity × area × runoff for any
// positive duration.
func RequiredFlow(intensity, area, durationMin, runoff float64) (float64, error) {
	volume, err := RainVolume(intensity, area, durationMin, runoff)
	if err != nil {
		return 0, err
	}
	return volume / (durationMin * SecondsPerMinute), nil
}
