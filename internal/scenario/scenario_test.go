package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/toastbox/internal/ecs"
	"github.com/jmylchreest/toastbox/internal/toast"
)

const sampleYAML = `
name: demo
steps:
  - at: 2s
    message: second
    anchor: bot-left
  - at: 500ms
    message: first
    show_time: 0s
  - at: 3s
    message: third
    background: "#336699"
`

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "demo", sc.Name)
	require.Len(t, sc.Steps, 3)
	assert.Equal(t, "second", sc.Steps[0].Message)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("steps: [not a step"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, sc.Steps, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestScenario_Compile(t *testing.T) {
	sc, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	base := toast.DefaultRequest()
	compiled, err := sc.Compile(base)
	require.NoError(t, err)
	require.Len(t, compiled, 3)

	// Sorted by offset regardless of file order.
	assert.Equal(t, 500*time.Millisecond, compiled[0].At)
	assert.Equal(t, "first", compiled[0].Request.Sections[0].Text)
	assert.Equal(t, 2*time.Second, compiled[1].At)
	assert.Equal(t, 3*time.Second, compiled[2].At)

	// Overrides apply; unset fields inherit the base.
	assert.Equal(t, time.Duration(0), compiled[0].Request.ShowTime)
	assert.Equal(t, toast.AnchorBotLeft, compiled[1].Request.Anchor)
	assert.Equal(t, base.Anchor, compiled[0].Request.Anchor)
	assert.InDelta(t, float64(0x33)/255, compiled[2].Request.Background.R, 1e-9)
}

func TestScenario_CompileErrors(t *testing.T) {
	base := toast.DefaultRequest()

	for name, yaml := range map[string]string{
		"bad at":       `steps: [{at: "soon", message: x}]`,
		"bad anchor":   `steps: [{at: "1s", message: x, anchor: somewhere}]`,
		"bad duration": `steps: [{at: "1s", message: x, show_time: forever}]`,
		"bad color":    `steps: [{at: "1s", message: x, background: reddish}]`,
	} {
		t.Run(name, func(t *testing.T) {
			sc, err := Parse([]byte(yaml))
			require.NoError(t, err)
			_, err = sc.Compile(base)
			assert.Error(t, err)
		})
	}
}

func TestPlayer_EmitsInOrder(t *testing.T) {
	sc, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	compiled, err := sc.Compile(toast.DefaultRequest())
	require.NoError(t, err)

	player := NewPlayer(nil, compiled)
	var sent []string
	sys := player.System(func(req toast.Request) {
		sent = append(sent, req.Sections[0].Text)
	})

	w := ecs.NewWorld()
	w.AddSystem(sys)

	// 100ms frames; steps fire once their offsets pass.
	step := func(n int) {
		for i := 0; i < n; i++ {
			w.Step(100 * time.Millisecond)
		}
	}

	step(4) // 400ms: nothing due yet
	assert.Empty(t, sent)

	step(1) // 500ms
	assert.Equal(t, []string{"first"}, sent)

	step(15) // 2s
	assert.Equal(t, []string{"first", "second"}, sent)
	assert.False(t, player.Done())

	step(10) // 3s
	assert.Equal(t, []string{"first", "second", "third"}, sent)
	assert.True(t, player.Done())

	// Nothing left to emit.
	step(10)
	assert.Len(t, sent, 3)
}

func TestPlayer_LargeFrameEmitsAllDue(t *testing.T) {
	compiled := []TimedRequest{
		{At: time.Second, Request: toast.NewRequest("a")},
		{At: 2 * time.Second, Request: toast.NewRequest("b")},
	}

	player := NewPlayer(nil, compiled)
	var count int
	sys := player.System(func(toast.Request) { count++ })

	w := ecs.NewWorld()
	w.AddSystem(sys)
	w.Step(5 * time.Second)

	assert.Equal(t, 2, count)
	assert.True(t, player.Done())
}
