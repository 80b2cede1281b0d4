package http

// SwaggerRankingEnvelope documents the ranking response envelope.
// @Description MABAC ranking with every intermediate stage
type SwaggerRankingEnvelope struct {
	Message string             `json:"message" example:"MABAC ranking computed"`
	Code    int                `json:"code" example:"200"`
	Data    RankingResponseDTO `json:"data"`
}

// SwaggerCriteriaEnvelope documents the criteria response envelope.
// @Description Active criteria catalog
type SwaggerCriteriaEnvelope struct {
	Message string              `json:"message" example:"Active criteria"`
	Code    int                 `json:"code" example:"200"`
	Data    CriteriaResponseDTO `json:"data"`
}
