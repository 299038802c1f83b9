package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-portal/internal/domain"
)

func TestStatusForMappedStages(t *testing.T) {
	stages := domain.DefaultStageMap()
	require.NotEmpty(t, stages)

	// Every mapped stage resolves to exactly its mapped value, regardless of
	// closed date.
	for stageID, want := range stages {
		require.Equal(t, want, StatusFor(stages, stageID, ""), "stage %s", stageID)
		require.Equal(t, want, StatusFor(stages, stageID, "2026-08-01T00:00:00Z"), "stage %s", stageID)
	}
}

func TestStatusForUnmappedStageFallsBackToClosedDate(t *testing.T) {
	stages := domain.DefaultStageMap()

	require.Equal(t, domain.StatusClosed, StatusFor(stages, "does-not-exist", "2026-08-01T00:00:00Z"))
	require.Equal(t, domain.StatusOpen, StatusFor(stages, "does-not-exist", ""))
	require.Equal(t, domain.StatusOpen, StatusFor(stages, "", ""))
}

func TestDefaultStageMapSpotChecks(t *testing.T) {
	stages := domain.DefaultStageMap()

	require.Equal(t, domain.StatusOpen, stages["1297561004"])     // Autoatencion intake
	require.Equal(t, domain.StatusWaiting, stages["1154516813"])  // Coordinación, waiting on customer
	require.Equal(t, domain.StatusWaiting, stages["1297561006"])  // Autoatencion, waiting on customer
	require.Equal(t, domain.StatusClosed, stages["106187294"])    // Operaciones closed bucket
	require.Equal(t, domain.StatusInProgress, stages["68493208"]) // Servicio al Cliente assigned
}

func TestCategoryLabel(t *testing.T) {
	categories := domain.DefaultCategoryMap()

	require.Equal(t, "Facturación", CategoryLabel(categories, "BILLING_ISSUE"))
	require.Equal(t, "Problema con Producto", CategoryLabel(categories, "PRODUCT_ISSUE"))
	// Unknown codes pass through verbatim so operators notice table gaps.
	require.Equal(t, "soporte", CategoryLabel(categories, "soporte"))
	require.Equal(t, "", CategoryLabel(categories, ""))
}
