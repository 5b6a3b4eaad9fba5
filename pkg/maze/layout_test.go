package maze

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-maze/pkg/world"
)

func TestLoadFileMatchesDefault(t *testing.T) {
	l, err := LoadFile("testdata/default.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), l)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestDefaultBuild(t *testing.T) {
	w, err := Default().Build()
	require.NoError(t, err)

	// floor, 18 inner walls and 4 outer walls
	assert.Equal(t, 23, w.Len())
	names := w.Names()
	assert.Equal(t, "floor", names[0])
	assert.Equal(t, "outer-west", names[len(names)-1])

	_, ok := w.Box("goal")
	assert.False(t, ok, "the win marker is not collidable")

	floor, _ := w.Box("floor")
	assert.Equal(t, mgl32.Vec3{-50, 0, -50}, floor.Min())
	assert.Equal(t, mgl32.Vec3{50, 0, 50}, floor.Max())
}

func TestDefaultSpawnAndGoalAreClear(t *testing.T) {
	l := Default()
	w, err := l.Build()
	require.NoError(t, err)

	size := mgl32.Vec3{3, 2, 3}
	spawn := world.BoxAround(l.Spawn.Add(mgl32.Vec3{0, 1, 0}), size)
	assert.False(t, w.Collides(spawn))

	goal := world.BoxAround(l.Win.Center.Add(mgl32.Vec3{0, 1, 0}), size)
	assert.False(t, w.Collides(goal))
}

func TestDrawablesIncludeMarker(t *testing.T) {
	l := Default()
	d := l.Drawables()
	assert.Len(t, d, len(l.Walls)+2)
	assert.Equal(t, "floor", d[0].Name)
	assert.Equal(t, "goal", d[len(d)-1].Name)
}

func TestParseRejectsInvalidLayouts(t *testing.T) {
	cases := map[string]string{
		"zero radius": `
name: bad
win: {radius: 0, marker: {name: goal, size: [1, 1, 1]}}
floor: {name: floor, size: [10, 0, 10]}
`,
		"duplicate": `
name: bad
win: {radius: 1, marker: {name: goal, size: [1, 1, 1]}}
floor: {name: floor, size: [10, 0, 10]}
walls:
  - {name: floor, size: [1, 1, 1]}
`,
		"negative size": `
name: bad
win: {radius: 1, marker: {name: goal, size: [1, 1, 1]}}
floor: {name: floor, size: [10, 0, 10]}
walls:
  - {name: w, size: [1, -1, 1]}
`,
		"degenerate": `
name: bad
win: {radius: 1, marker: {name: goal, size: [1, 1, 1]}}
floor: {name: floor, size: [10, 0, 0]}
`,
		"no layout name": `
win: {radius: 1, marker: {name: goal, size: [1, 1, 1]}}
floor: {name: floor, size: [10, 0, 10]}
`,
		"unnamed": `
name: bad
win: {radius: 1, marker: {name: goal, size: [1, 1, 1]}}
floor: {size: [10, 0, 10]}
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("name: x\nteleporters: []\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidLayout)
}
