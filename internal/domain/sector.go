package domain

type MarketSector struct {
	Sector           string  `json:"sector"`
	AverageSalary    int     `json:"average_salary"`
	OpenPositions    int     `json:"open_positions"`
	GrowthPercentage float64 `json:"growth_percentage"`
	TopSkills        string  `json:"top_skills"`
	MarketTrend      string  `json:"market_trend"`
}
