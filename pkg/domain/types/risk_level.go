package types

// RiskLevel is the categorical band derived from a likelihood/impact score.
// It is never persisted; it is recomputed on every read.
type RiskLevel string

const (
	RiskLevelSangatRendah RiskLevel = "Sangat Rendah"
	RiskLevelRendah       RiskLevel = "Rendah"
	RiskLevelSedang       RiskLevel = "Sedang"
	RiskLevelTinggi       RiskLevel = "Tinggi"
	RiskLevelSangatTinggi RiskLevel = "Sangat Tinggi"

	// RiskLevelNA indicates an incomplete analysis (missing likelihood or
	// impact). It is a display state, not an error.
	RiskLevelNA RiskLevel = "N/A"
)

// RiskLevelFromScore maps a score (1-25) to its band. Band lower bounds are
// inclusive and fixed. Scores below 1 cannot occur for a non-null level pair
// since both weights start at 1; they map to RiskLevelNA.
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= 20:
		return RiskLevelSangatTinggi
	case score >= 16:
		return RiskLevelTinggi
	case score >= 12:
		return RiskLevelSedang
	case score >= 6:
		return RiskLevelRendah
	case score >= 1:
		return RiskLevelSangatRendah
	default:
		return RiskLevelNA
	}
}

// String returns the string representation of the band
func (r RiskLevel) String() string {
	return string(r)
}
