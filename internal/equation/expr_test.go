package equation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleFields(t *testing.T) {
	parsed, err := Parse("a+b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, parsed.Fields)
	assert.Empty(t, parsed.Functions)
}

func TestParse_DottedFieldNames(t *testing.T) {
	parsed, err := Parse("transaction.duration / spans.db")
	require.NoError(t, err)
	assert.Equal(t, []string{"transaction.duration", "spans.db"}, parsed.Fields)
}

func TestParse_Functions(t *testing.T) {
	parsed, err := Parse("count() / p95(transaction.duration)")
	require.NoError(t, err)
	assert.Empty(t, parsed.Fields)
	assert.Equal(t, []string{"count()", "p95(transaction.duration)"}, parsed.Functions)
}

func TestParse_FunctionWithMultipleArgs(t *testing.T) {
	parsed, err := Parse("count_if(transaction.duration,greater,300) * 100")
	require.NoError(t, err)
	assert.Equal(t, []string{"count_if(transaction.duration,greater,300)"}, parsed.Functions)
}

func TestParse_LiteralsNotRecorded(t *testing.T) {
	parsed, err := Parse("(a + 100) * 0.5")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, parsed.Fields)
	assert.Empty(t, parsed.Functions)
}

func TestParse_DuplicateTermRecordedOnce(t *testing.T) {
	parsed, err := Parse("a + a * a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, parsed.Fields)
}

func TestParse_Precedence_AllOperatorsAccepted(t *testing.T) {
	parsed, err := Parse("a - b / c + d * e")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, parsed.Fields)
}

func TestParse_Errors(t *testing.T) {
	for _, expr := range []string{
		"",
		"a +",
		"(a + b",
		"a b",
		"+ a",
		"count(",
		"a & b",
	} {
		_, err := Parse(expr)
		assert.Error(t, err, "expression %q should not parse", expr)
	}
}
