package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockDetector(t *testing.T) {
	d := NewMock()
	assert.Equal(t, SourceMock, d.Name())

	got, err := d.Diagnose(context.Background(), Image{}, "WHEAT")
	require.NoError(t, err)
	assert.Equal(t, "Rust", got.DiseaseName)
	assert.Equal(t, "રસ્ટ", got.DiseaseNameGu)
	assert.Equal(t, "Urea 46% at 50kg per acre", got.Fertilizer)
	assert.Equal(t, SourceMock, got.Source)
	assert.Contains(t, got.Report, "રસ્ટ")

	for _, crop := range []string{"banana", "", "  "} {
		got, err := d.Diagnose(context.Background(), Image{Data: []byte("ignored")}, crop)
		require.NoError(t, err)
		assert.Equal(t, "Bacterial Blight", got.DiseaseName, "crop %q falls back to cotton", crop)
	}
}

func TestMockDetectorDoesNotShareTable(t *testing.T) {
	d := NewMock()
	a, err := d.Diagnose(context.Background(), Image{}, "rice")
	require.NoError(t, err)
	a.DiseaseName = "mutated"

	b, err := d.Diagnose(context.Background(), Image{}, "rice")
	require.NoError(t, err)
	assert.Equal(t, "Blast", b.DiseaseName)
}

func TestMockDetectorHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMock().Diagnose(ctx, Image{}, "rice")
	assert.ErrorIs(t, err, context.Canceled)
}
