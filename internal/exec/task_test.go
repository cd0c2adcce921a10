package exec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArena_PriorityOrderWithNameTiebreak(t *testing.T) {
	t.Parallel()

	arena, err := buildArena([]TaskSpec{
		{Name: "b_side", Priority: 2},
		{Name: "a_side", Priority: 2},
		{Name: "core", Priority: 1},
	})
	require.NoError(t, err)

	require.Len(t, arena, 3)
	assert.Equal(t, "core", arena[0].name)
	assert.Equal(t, "a_side", arena[1].name)
	assert.Equal(t, "b_side", arena[2].name)
	for _, task := range arena {
		assert.True(t, task.active, "tasks start active")
	}
}

func TestBuildArena_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		roster []TaskSpec
	}{
		{"empty roster", nil},
		{"empty task name", []TaskSpec{{Name: "", Priority: 1}}},
		{"priority below minimum", []TaskSpec{{Name: "x", Priority: 0}}},
		{"duplicate name", []TaskSpec{{Name: "x", Priority: 1}, {Name: "x", Priority: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := buildArena(tt.roster)
			assert.Error(t, err)
		})
	}
}
