package sales_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/optica-pos/internal/domain/sales"
)

func TestParseDateOfBirth(t *testing.T) {
	want := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"1990-03-14", "1990-03-14T00:00:00.000Z", "1990-03-14T10:11:12", "14/03/1990"} {
		got := sales.ParseDateOfBirth(in)
		require.NotNil(t, got, in)
		assert.True(t, got.Equal(want), "entrada %q produjo %v", in, got)
	}
}

func TestParseDateOfBirth_VaciaOInvalida(t *testing.T) {
	assert.Nil(t, sales.ParseDateOfBirth(""))
	assert.Nil(t, sales.ParseDateOfBirth("   "))
	assert.Nil(t, sales.ParseDateOfBirth("kemarin"))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "08123456789", sales.NormalizePhone(" 0812-3456 789 "))
	assert.Equal(t, "+6281234", sales.NormalizePhone("+62 (812) 34"))
}
