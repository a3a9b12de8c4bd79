package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/print-shop/ledger/internal/domain/valueobject"
)

func TestToScopeResponse(t *testing.T) {
	p, err := valueobject.NewPeriod(2024, 5)
	require.NoError(t, err)

	month := ToScopeResponse(valueobject.MonthScope(p))
	assert.Equal(t, ScopeResponse{Kind: "month", Year: 2024, Month: 5, Label: "May 2024"}, month)

	all := ToScopeResponse(valueobject.AllScope())
	assert.Equal(t, ScopeResponse{Kind: "all", Label: "All time"}, all)

	raw, err := json.Marshal(all)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"all","label":"All time"}`, string(raw))
}

func TestToPeriodListResponse(t *testing.T) {
	response := ToPeriodListResponse([]valueobject.Period{
		{Year: 2024, Month: time.December},
		{Year: 2023, Month: time.January},
	})

	require.Len(t, response.Periods, 2)
	assert.Equal(t, PeriodResponse{Year: 2024, Month: 12, Label: "Dec 2024"}, response.Periods[0])
	assert.Equal(t, PeriodResponse{Year: 2023, Month: 1, Label: "Jan 2023"}, response.Periods[1])

	empty := ToPeriodListResponse(nil)
	assert.NotNil(t, empty.Periods)
	assert.Empty(t, empty.Periods)
}
