package numbering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	t.Run("starts at scheme minimum when nothing is assigned", func(t *testing.T) {
		next, err := CollegeScheme.Next(0)
		require.NoError(t, err)
		assert.Equal(t, 1, next)
	})

	t.Run("increments the current maximum", func(t *testing.T) {
		next, err := CollegeScheme.Next(12)
		require.NoError(t, err)
		assert.Equal(t, 13, next)
	})

	t.Run("fails once the range is exhausted", func(t *testing.T) {
		_, err := CollegeScheme.Next(99)
		require.ErrorIs(t, err, ErrExhausted)
	})

	t.Run("clamps stray values below the minimum", func(t *testing.T) {
		next, err := Scheme{Min: 10, Max: 20, Width: 2}.Next(3)
		require.NoError(t, err)
		assert.Equal(t, 10, next)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, CollegeScheme.Validate(1))
	require.NoError(t, CollegeScheme.Validate(99))
	require.ErrorIs(t, CollegeScheme.Validate(0), ErrOutOfRange)
	require.ErrorIs(t, CollegeScheme.Validate(100), ErrOutOfRange)
	require.ErrorIs(t, CollegeScheme.Validate(-5), ErrOutOfRange)
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name   string
		scheme Scheme
		code   int
		want   string
	}{
		{"pads to width", CollegeScheme, 1, "01"},
		{"two digit code unchanged", CollegeScheme, 12, "12"},
		{"program codes pad to three", ProgramScheme, 7, "007"},
		{"absent code renders empty", CollegeScheme, 0, ""},
		{"prefix joined by separator", Scheme{Min: 1, Max: 99, Width: 2, Prefix: "C", Separator: "-"}, 3, "C-03"},
		{"suffix joined by separator", Scheme{Min: 1, Max: 99, Width: 2, Suffix: "A", Separator: "-"}, 3, "03-A"},
		{"wider code than width kept intact", Scheme{Min: 1, Max: 9999, Width: 2}, 123, "123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.scheme.Format(tc.code))
		})
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, "05", CollegeScheme.Format(5))
	}
}

func TestValidateAfterGenerate(t *testing.T) {
	// Every code produced by Next must validate under the same scheme.
	current := 0
	for i := 0; i < 99; i++ {
		next, err := CollegeScheme.Next(current)
		require.NoError(t, err)
		require.NoError(t, CollegeScheme.Validate(next))
		current = next
	}
	_, err := CollegeScheme.Next(current)
	require.ErrorIs(t, err, ErrExhausted)
}

func TestFormatScoped(t *testing.T) {
	assert.Equal(t, "12-01", DepartmentScheme.FormatScoped(12, 1))
	assert.Equal(t, "01-05", DepartmentScheme.FormatScoped(1, 5))
	assert.Equal(t, "03", DepartmentScheme.FormatScoped(0, 3))
	assert.Equal(t, "", DepartmentScheme.FormatScoped(12, 0))
}
