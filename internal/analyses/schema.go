package analyses

// JSON contract returned by the external model:
// {
//   "marketAnalysis":       {"score": 0-100, "summary": "...", "marketSize": "...", "competition": "...", "trends": ["..."]},
//   "technicalFeasibility": {"score": 0-100, "summary": "...", "complexity": "...", "timeToMarket": "...", "risks": ["..."]},
//   "commercialPotential":  {"score": 0-100, "summary": "...", "revenueModel": "...", "scalability": "...", "barriers": ["..."]},
//   "teamAndExecution":     {"score": 0-100, "summary": "...", "expertise": "...", "resources": "...", "recommendations": ["..."]},
//   "overallScore": 0-100,
//   "investmentRecommendation": "STRONG BUY | BUY | HOLD | WEAK | PASS",
//   "keyInsights": ["..."],
//   "nextSteps": ["..."],
//   "hybridOpportunities": ["..."]
// }

// AnalysisResult is the normalized four-part evaluation for one request.
// The sub-assessments are pointers so that absent sections survive decoding
// and can be reported by name.
type AnalysisResult struct {
	MarketAnalysis           *MarketAnalysis       `json:"marketAnalysis"`
	TechnicalFeasibility     *TechnicalFeasibility `json:"technicalFeasibility"`
	CommercialPotential      *CommercialPotential  `json:"commercialPotential"`
	TeamAndExecution         *TeamAndExecution     `json:"teamAndExecution"`
	OverallScore             float64               `json:"overallScore"`
	InvestmentRecommendation string                `json:"investmentRecommendation"`
	KeyInsights              []string              `json:"keyInsights"`
	NextSteps                []string              `json:"nextSteps"`
	HybridOpportunities      []string              `json:"hybridOpportunities,omitempty"`
}

// MarketAnalysis scores the market opportunity.
type MarketAnalysis struct {
	Score       float64  `json:"score"`
	Summary     string   `json:"summary"`
	MarketSize  string   `json:"marketSize"`
	Competition string   `json:"competition"`
	Trends      []string `json:"trends"`
}

// TechnicalFeasibility scores technical viability.
type TechnicalFeasibility struct {
	Score        float64  `json:"score"`
	Summary      string   `json:"summary"`
	Complexity   string   `json:"complexity"`
	TimeToMarket string   `json:"timeToMarket"`
	Risks        []string `json:"risks"`
}

// CommercialPotential scores commercial viability.
type CommercialPotential struct {
	Score        float64  `json:"score"`
	Summary      string   `json:"summary"`
	RevenueModel string   `json:"revenueModel"`
	Scalability  string   `json:"scalability"`
	Barriers     []string `json:"barriers"`
}

// TeamAndExecution scores team readiness and execution needs.
type TeamAndExecution struct {
	Score           float64  `json:"score"`
	Summary         string   `json:"summary"`
	Expertise       string   `json:"expertise"`
	Resources       string   `json:"resources"`
	Recommendations []string `json:"recommendations"`
}

// Recommendation values accepted in investmentRecommendation.
const (
	RecommendationStrongBuy = "STRONG BUY"
	RecommendationBuy       = "BUY"
	RecommendationHold      = "HOLD"
	RecommendationWeak      = "WEAK"
	RecommendationPass      = "PASS"
)

var recommendations = map[string]struct{}{
	RecommendationStrongBuy: {},
	RecommendationBuy:       {},
	RecommendationHold:      {},
	RecommendationWeak:      {},
	RecommendationPass:      {},
}

// ValidRecommendation reports whether v is a recognized recommendation value.
func ValidRecommendation(v string) bool {
	_, ok := recommendations[v]
	return ok
}
