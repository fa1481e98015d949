package types

// RiskCategory classifies a potential risk. The list is fixed; a persisted
// category is either nil or one of these members.
type RiskCategory string

const (
	CategoryKebijakan   RiskCategory = "Kebijakan"
	CategoryHukum       RiskCategory = "Hukum"
	CategoryReputasi    RiskCategory = "Reputasi"
	CategoryKepatuhan   RiskCategory = "Kepatuhan"
	CategoryKeuangan    RiskCategory = "Keuangan"
	CategoryFraud       RiskCategory = "Fraud"
	CategoryOperasional RiskCategory = "Operasional"
	CategoryKinerja     RiskCategory = "Kinerja"
)

// AllRiskCategories returns all valid risk categories
func AllRiskCategories() []RiskCategory {
	return []RiskCategory{
		CategoryKebijakan,
		CategoryHukum,
		CategoryReputasi,
		CategoryKepatuhan,
		CategoryKeuangan,
		CategoryFraud,
		CategoryOperasional,
		CategoryKinerja,
	}
}

// IsValid checks if the category is a member of the fixed list
func (c RiskCategory) IsValid() bool {
	for _, v := range AllRiskCategories() {
		if c == v {
			return true
		}
	}
	return false
}

// String returns the string representation of the category
func (c RiskCategory) String() string {
	return string(c)
}
