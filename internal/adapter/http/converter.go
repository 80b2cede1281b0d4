package http

import (
	"github.com/wisata-ranking/destination-ranking/internal/criteria"
	"github.com/wisata-ranking/destination-ranking/internal/domain"
	"github.com/wisata-ranking/destination-ranking/internal/mabac"
)

// ToMabacInput converts a validated CalculateRequest into engine input.
func ToMabacInput(req *CalculateRequest) ([]mabac.Criterion, []mabac.Alternative) {
	crit := make([]mabac.Criterion, len(req.Criteria))
	for i, c := range req.Criteria {
		name := c.Name
		if name == "" {
			name = c.Code
		}
		crit[i] = mabac.Criterion{
			Code:   c.Code,
			Name:   name,
			Weight: c.Weight,
			Type:   mabac.CriterionType(c.Type),
		}
	}

	alts := make([]mabac.Alternative, len(req.Alternatives))
	for i, a := range req.Alternatives {
		alts[i] = mabac.Alternative{
			ID:     a.ID,
			Name:   a.Name,
			Values: append([]float64(nil), a.Values...),
		}
	}
	return crit, alts
}

// ToRankingResponse converts a completed run into its response DTO.
func ToRankingResponse(run *domain.RankingRun) RankingResponseDTO {
	res := run.Result

	crit := make([]CriterionDTO, len(res.Criteria))
	for i, c := range res.Criteria {
		crit[i] = CriterionDTO{Code: c.Code, Name: c.Name, Weight: c.Weight, Type: string(c.Type)}
	}

	border := make([]BorderValueDTO, len(res.Border))
	for j, g := range res.Border {
		border[j] = BorderValueDTO{Code: res.Criteria[j].Code, Value: g}
	}

	ranking := make([]RankingRowDTO, len(res.Ranking))
	for i, r := range res.Ranking {
		ranking[i] = RankingRowDTO{
			ID:          r.AlternativeID,
			Name:        r.Name,
			Score:       r.Score,
			Rank:        r.Rank,
			Recommended: run.IsRecommended(r.Rank),
		}
	}

	return RankingResponseDTO{
		RunID:            run.ID,
		Source:           string(run.Source),
		CalculatedAt:     run.CalculatedAt,
		Criteria:         crit,
		InitialMatrix:    toMatrixRows(res.Alternatives, res.Decision),
		NormalizedMatrix: toMatrixRows(res.Alternatives, res.Normalized),
		WeightedMatrix:   toMatrixRows(res.Alternatives, res.Weighted),
		BorderAreaMatrix: border,
		DistanceMatrix:   toMatrixRows(res.Alternatives, res.Distance),
		FinalRanking:     ranking,
	}
}

func toMatrixRows(alts []mabac.Alternative, m mabac.Matrix) []MatrixRowDTO {
	rows := make([]MatrixRowDTO, len(m))
	for i, row := range m {
		rows[i] = MatrixRowDTO{
			ID:     alts[i].ID,
			Name:   alts[i].Name,
			Values: append([]float64(nil), row...),
		}
	}
	return rows
}

// ToCriteriaResponse converts catalog definitions into their response DTO.
func ToCriteriaResponse(defs []criteria.Definition) CriteriaResponseDTO {
	catalog := criteria.Catalog{Definitions: defs}

	out := make([]CatalogCriterionDTO, len(defs))
	for i, d := range defs {
		out[i] = CatalogCriterionDTO{
			Code:      d.Code,
			Name:      d.Name,
			Weight:    d.Weight,
			Type:      string(d.Type),
			Attribute: d.Attribute.String(),
		}
	}

	return CriteriaResponseDTO{
		Criteria:  out,
		WeightSum: catalog.WeightSum(),
		Balanced:  catalog.Balanced(),
	}
}
