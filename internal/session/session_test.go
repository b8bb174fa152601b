package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/config"
	"github.com/coldpress/trapcore/internal/geom"
	"github.com/coldpress/trapcore/internal/model"
)

func twoRectDocument() model.Document {
	c20 := color.NewFromCMYK100("c20", color.CMYK{C: 20, M: 20, Y: 20, K: 0}, 1)
	k80 := color.NewFromCMYK100("k80", color.CMYK{K: 80}, 1)

	r1 := geom.NewPolyline([]geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, true)
	r2 := geom.NewPolyline([]geom.Vec2{{X: 10, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 10, Y: 10}}, true)

	return model.Document{
		Objects: []model.GraphicObject{
			{ID: "r1", Type: model.ObjectPath, Paths: []geom.Path{r1}, Fill: &model.Fill{ColorID: "c20", Opacity: 1}},
			{ID: "r2", Type: model.ObjectPath, Paths: []geom.Path{r2}, Fill: &model.Fill{ColorID: "k80", Opacity: 1}},
		},
		Palette: map[string]color.Color{"c20": c20, "k80": k80},
	}
}

func TestGenerateTrapsBasicTwoRegions(t *testing.T) {
	s := New(config.DefaultSettings())
	doc := twoRectDocument()

	result, err := s.GenerateTraps(context.Background(), nil, doc)
	require.NoError(t, err)
	assert.NotNil(t, result.Graph)
	last, ok := s.LastResult()
	assert.True(t, ok)
	assert.Equal(t, result.Layer.Stats.TotalTraps, last.Layer.Stats.TotalTraps)
}

func TestGenerateTrapsRejectsEmptyPalette(t *testing.T) {
	s := New(config.DefaultSettings())
	doc := model.Document{Objects: []model.GraphicObject{{ID: "o1"}}}

	_, err := s.GenerateTraps(context.Background(), nil, doc)
	assert.Error(t, err)
}

func TestGenerateTrapsCancellation(t *testing.T) {
	s := New(config.DefaultSettings())
	doc := twoRectDocument()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GenerateTraps(ctx, nil, doc)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestUpdateSettingsMerge(t *testing.T) {
	s := New(config.DefaultSettings())
	s.UpdateSettings(config.Settings{
		DefaultWidthMM: 0.5,
		TrapThinLines:  true,
		CornerStyle:    "round",
		Mode:           config.ModeReverse,
	})

	got := s.Settings()
	assert.Equal(t, 0.5, got.DefaultWidthMM)
	assert.True(t, got.TrapThinLines)
	assert.Equal(t, "round", got.CornerStyle)
	assert.Equal(t, config.ModeReverse, got.Mode)

	// fields untouched by the partial must survive the merge unchanged.
	assert.Equal(t, config.DefaultSettings().MinWidthMM, got.MinWidthMM)
	assert.Equal(t, config.DefaultSettings().TrapBlackToAll, got.TrapBlackToAll)
}

func TestRunQCWithoutPriorGenerateErrors(t *testing.T) {
	s := New(config.DefaultSettings())
	_, err := s.RunQC(twoRectDocument())
	assert.Error(t, err)
}
