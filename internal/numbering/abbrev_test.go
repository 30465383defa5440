package numbering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbbreviate(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"initials of significant words", "Department of Computer Science", 0, "DCS"},
		{"single word", "Mathematics", 0, "M"},
		{"stop words skipped", "College of Arts and Sciences", 0, "CAS"},
		{"lowercase input uppercased", "software engineering", 0, "SE"},
		{"truncated to max length", "Faculty of Electrical and Electronic Engineering", 2, "FE"},
		{"punctuation stripped", "Physics & Astronomy (Dept.)", 0, "PAD"},
		{"multibyte initials truncated whole", "كلية الهندسة المدنية", 2, "كا"},
		{"empty name", "   ", 0, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Abbreviate(tc.input, tc.maxLen))
		})
	}
}

func TestUniqueCode(t *testing.T) {
	t.Run("base kept when unused", func(t *testing.T) {
		assert.Equal(t, "CS", UniqueCode("CS", nil))
	})

	t.Run("first collision gets suffix 1", func(t *testing.T) {
		assert.Equal(t, "CS1", UniqueCode("CS", []string{"CS"}))
	})

	t.Run("suffix continues past the highest taken", func(t *testing.T) {
		assert.Equal(t, "CS3", UniqueCode("CS", []string{"CS", "CS1", "CS2"}))
	})

	t.Run("unrelated codes ignored", func(t *testing.T) {
		assert.Equal(t, "CS", UniqueCode("CS", []string{"CSE", "CE"}))
	})

	t.Run("freed base reused before any suffix", func(t *testing.T) {
		assert.Equal(t, "CS", UniqueCode("CS", []string{"CS1", "CS2"}))
	})

	t.Run("gap in suffixes filled first", func(t *testing.T) {
		assert.Equal(t, "CS1", UniqueCode("CS", []string{"CS", "CS7"}))
	})

	t.Run("empty base stays empty", func(t *testing.T) {
		assert.Equal(t, "", UniqueCode("", []string{"X"}))
	})
}
