package storage_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/showroom/internal/models"
	"github.com/mmynk/showroom/internal/storage"
	"github.com/mmynk/showroom/internal/storage/memory"
)

type failingStore struct {
	*memory.Store
}

func (failingStore) CreateUser(context.Context, models.NewUser) (models.User, error) {
	return models.User{}, errors.New("disk full")
}

func TestInstrument(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	inner := memory.New()

	store, err := storage.Instrument(inner, reg)
	require.NoError(t, err)
	assert.Equal(t, "memory", store.Name())

	created, err := store.CreateUser(ctx, models.NewUser{Username: "admin", Password: "hash"})
	require.NoError(t, err)

	got, ok := store.GetUser(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)

	_, ok = store.GetUser(ctx, 999)
	assert.False(t, ok)

	expected := `
# HELP showroom_storage_operations_total Storage operations by backend, operation and outcome.
# TYPE showroom_storage_operations_total counter
showroom_storage_operations_total{backend="memory",operation="create_user",outcome="ok"} 1
showroom_storage_operations_total{backend="memory",operation="get_user",outcome="absent"} 1
showroom_storage_operations_total{backend="memory",operation="get_user",outcome="ok"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "showroom_storage_operations_total"))
}

func TestInstrumentCountsErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	store, err := storage.Instrument(failingStore{memory.New()}, reg)
	require.NoError(t, err)

	_, err = store.CreateUser(context.Background(), models.NewUser{Username: "admin"})
	require.Error(t, err)

	expected := `
# HELP showroom_storage_operations_total Storage operations by backend, operation and outcome.
# TYPE showroom_storage_operations_total counter
showroom_storage_operations_total{backend="memory",operation="create_user",outcome="error"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "showroom_storage_operations_total"))
}

func TestInstrumentRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := storage.Instrument(memory.New(), reg)
	require.NoError(t, err)

	_, err = storage.Instrument(memory.New(), reg)
	assert.Error(t, err)
}

func TestInstrumentPing(t *testing.T) {
	store, err := storage.Instrument(memory.New(), prometheus.NewRegistry())
	require.NoError(t, err)

	p, ok := store.(storage.Pinger)
	require.True(t, ok)
	assert.NoError(t, p.Ping(context.Background()))
}
