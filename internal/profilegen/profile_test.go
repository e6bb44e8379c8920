package profilegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageOf(t *testing.T) {
	tests := []struct {
		age  int
		want LifeStage
	}{
		{0, Child},
		{12, Child},
		{13, Teenager},
		{19, Teenager},
		{20, Adult},
		{75, Adult},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StageOf(tt.age), "age %d", tt.age)
	}
}

func TestNew(t *testing.T) {
	p, err := New("Ada", 2010, 2026, []string{"chess"})
	require.NoError(t, err)
	assert.Equal(t, 16, p.Age)
	assert.Equal(t, Teenager, p.Stage)

	_, err = New("Ada", 2030, 2026, nil)
	assert.ErrorIs(t, err, ErrFutureBirthYear)
}

func TestRender(t *testing.T) {
	t.Run("with hobbies", func(t *testing.T) {
		p := Profile{Name: "Ada", Age: 30, Stage: Adult, Hobbies: []string{"chess", "hiking"}}
		out := p.Render()
		assert.Contains(t, out, "Name: Ada")
		assert.Contains(t, out, "Life Stage: Adult")
		assert.Contains(t, out, "Favorite Hobbies (2):")
		assert.Contains(t, out, "- chess")
	})

	t.Run("without hobbies", func(t *testing.T) {
		p := Profile{Name: "Ada", Age: 30, Stage: Adult}
		assert.Contains(t, p.Render(), "You didn't mention any hobbies.")
	})
}
