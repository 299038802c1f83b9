package resolve

import "github.com/spec-kit/support-portal/internal/domain"

// StatusFor translates a pipeline-stage id into a canonical status. Stages
// missing from the map fall back to the closed-date heuristic: a ticket with
// a closed date is closed, anything else is open. The waiting/in_progress
// distinction is lost for unmapped stages, which beats failing hard every
// time the CRM grows a pipeline this table hasn't caught up with.
func StatusFor(stages domain.StageMap, stageID, closedDate string) domain.Status {
	if status, ok := stages[stageID]; ok {
		return status
	}
	if closedDate != "" {
		return domain.StatusClosed
	}
	return domain.StatusOpen
}

// CategoryLabel translates a category code into its display label. Unknown
// codes pass through verbatim so operators notice gaps in the table.
func CategoryLabel(categories domain.CategoryMap, code string) string {
	if label, ok := categories[code]; ok {
		return label
	}
	return code
}
