package cli

import (
	"context"
	"testing"
	"time"

	"github.com/nadialowe/chartwell/internal/domain"
	"github.com/nadialowe/chartwell/internal/repository"
	"github.com/nadialowe/chartwell/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFidelityValue_Set(t *testing.T) {
	var f fidelityValue
	require.NoError(t, f.Set("high"))
	assert.Equal(t, "high", f.String())

	require.NoError(t, f.Set("LOW"))
	assert.Equal(t, "low", f.String())

	assert.Error(t, f.Set("ultra"))
	assert.Equal(t, "fidelity", f.Type())
}

func TestParseChartKind(t *testing.T) {
	kind, err := parseChartKind("Bar")
	require.NoError(t, err)
	assert.Equal(t, domain.ChartBar, kind)

	_, err = parseChartKind("pie")
	assert.Error(t, err)
}

func TestParseTimestamp_Layouts(t *testing.T) {
	for _, s := range []string{"2025-03-15T09:30:00Z", "2025-03-15T09:30", "2025-03-15"} {
		_, err := parseTimestamp(s)
		assert.NoError(t, err, s)
	}
	_, err := parseTimestamp("March 15")
	assert.Error(t, err)
}

func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	return &App{Presets: repository.NewSQLitePresetRepo(db)}
}

func TestResolveSelection_Period(t *testing.T) {
	sel, err := resolveSelection(context.Background(), testApp(t), "24h", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "24h", sel.Period)
}

func TestResolveSelection_Absolute(t *testing.T) {
	sel, err := resolveSelection(context.Background(), testApp(t), "", "2025-03-01", "2025-03-08", "")
	require.NoError(t, err)
	require.NotNil(t, sel.Start)
	require.NotNil(t, sel.End)
	assert.Equal(t, 7*24*time.Hour, sel.End.Sub(*sel.Start))
}

func TestResolveSelection_Preset(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, app.Presets.Create(ctx, &domain.RangePreset{
		ID: "p1", Name: "last-week", Selection: domain.RelativeSelection("7d"),
		CreatedAt: now, UpdatedAt: now,
	}))

	sel, err := resolveSelection(ctx, app, "", "", "", "last-week")
	require.NoError(t, err)
	assert.Equal(t, "7d", sel.Period)
}

func TestResolveSelection_UnknownPreset(t *testing.T) {
	_, err := resolveSelection(context.Background(), testApp(t), "", "", "", "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResolveSelection_MutuallyExclusive(t *testing.T) {
	_, err := resolveSelection(context.Background(), testApp(t), "24h", "", "", "last-week")
	assert.Error(t, err)
}

func TestResolveSelection_HalfAbsolute(t *testing.T) {
	_, err := resolveSelection(context.Background(), testApp(t), "", "2025-03-01", "", "")
	assert.Error(t, err)
}

func TestResolveSelection_NothingGiven(t *testing.T) {
	sel, err := resolveSelection(context.Background(), testApp(t), "", "", "", "")
	require.NoError(t, err)
	assert.Empty(t, sel.Period)
	assert.Nil(t, sel.Start)
}
