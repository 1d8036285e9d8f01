package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type drawCall struct {
	id   TileID
	x, y int
}

type recordingDrawer struct {
	calls []drawCall
}

func (r *recordingDrawer) DrawTile(id TileID, x, y int) {
	r.calls = append(r.calls, drawCall{id: id, x: x, y: y})
}

func testTimings() ObjectTimings {
	return ObjectTimings{CompressMs: 100, CrumbleStageMs: 50, FlagWaveMs: 40}
}

func TestBouncer_CompressCycle(t *testing.T) {
	b := NewBouncer(32, 16, testTimings())
	assert.Equal(t, KindBouncer, b.Kind())
	assert.False(t, b.IsCompressed())

	b.Compress()
	assert.True(t, b.IsCompressed())

	b.Update(60)
	assert.True(t, b.IsCompressed())

	// Compressing again does not restart the timer
	b.Compress()
	b.Update(40)
	assert.False(t, b.IsCompressed())
}

func TestBouncer_Render(t *testing.T) {
	b := NewBouncer(32, 16, testTimings())
	d := &recordingDrawer{}

	b.Render(d)
	b.Compress()
	b.Render(d)

	assert.Equal(t, []drawCall{
		{SpriteBouncer, 32, 16},
		{SpriteBouncerSquashed, 32, 16},
	}, d.calls)
}

func TestDestructibleBlock_Progression(t *testing.T) {
	b := NewDestructibleBlock(0, 0, testTimings())
	assert.Equal(t, BlockIdle, b.State())

	// Idle blocks do not advance on their own
	b.Update(1000)
	assert.Equal(t, BlockIdle, b.State())

	b.Destroy()
	assert.Equal(t, BlockCrumbling1, b.State())
	assert.False(t, b.IsDestroyed())

	b.Update(50)
	assert.Equal(t, BlockCrumbling2, b.State())

	// Touching a crumbling block keeps the current stage
	b.Destroy()
	assert.Equal(t, BlockCrumbling2, b.State())

	b.Update(49)
	assert.False(t, b.IsDestroyed())
	b.Update(1)
	assert.True(t, b.IsDestroyed())

	b.Update(1000)
	assert.Equal(t, BlockDestroyed, b.State())
}

func TestDestructibleBlock_LargeStep(t *testing.T) {
	b := NewDestructibleBlock(0, 0, testTimings())
	b.Destroy()
	b.Update(500)
	assert.True(t, b.IsDestroyed())
}

func TestDestructibleBlock_ZeroDuration(t *testing.T) {
	b := NewDestructibleBlock(0, 0, ObjectTimings{})
	b.Destroy()
	b.Update(0)
	assert.True(t, b.IsDestroyed())
}

func TestDestructibleBlock_Render(t *testing.T) {
	b := NewDestructibleBlock(16, 32, testTimings())
	d := &recordingDrawer{}

	b.Render(d)
	b.Destroy()
	b.Render(d)
	b.Update(50)
	b.Render(d)
	b.Update(50)
	b.Render(d)

	assert.Equal(t, []drawCall{
		{SpriteBlock, 16, 32},
		{SpriteBlockCrumble1, 16, 32},
		{SpriteBlockCrumble2, 16, 32},
	}, d.calls, "destroyed block draws nothing")
}

func TestBalloon_Pop(t *testing.T) {
	b := NewBalloon(48, 0, 16)
	d := &recordingDrawer{}

	b.Render(d)
	assert.Equal(t, []drawCall{
		{SpriteBalloonHead, 48, 0},
		{SpriteBalloonHandle, 48, 16},
	}, d.calls)

	b.Pop()
	assert.True(t, b.IsPopped())

	d.calls = nil
	b.Update(1000)
	b.Render(d)
	assert.Empty(t, d.calls)
	assert.True(t, b.IsPopped(), "popping is terminal")
}

func TestFlag_Wave(t *testing.T) {
	f := NewFlag(0, 0, testTimings())
	d := &recordingDrawer{}

	f.Render(d)
	f.Update(40)
	f.Render(d)
	f.Update(80)
	f.Render(d)

	assert.Equal(t, []TileID{SpriteFlag, SpriteFlagWave, SpriteFlagWave}, []TileID{d.calls[0].id, d.calls[1].id, d.calls[2].id})
}

func TestCellOf(t *testing.T) {
	b := NewBouncer(32, 48, testTimings())
	tx, ty := CellOf(b, 16)
	assert.Equal(t, 2, tx)
	assert.Equal(t, 3, ty)
}

func TestObjectKind_String(t *testing.T) {
	assert.Equal(t, "Bouncer", KindBouncer.String())
	assert.Equal(t, "Flag", KindFlag.String())
	assert.Equal(t, "Balloon", KindBalloon.String())
	assert.Equal(t, "DestructibleBlock", KindDestructible.String())
	assert.Equal(t, "Unknown", ObjectKind(42).String())
}
