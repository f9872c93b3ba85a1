package repair

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeConfigStore struct {
	values map[string]string
	err    error
}

func (f *fakeConfigStore) GetSystemValueString(ctx context.Context, key string, def string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func TestVersionGateShouldRun(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{"0.0.0", true},
		{"13.0.0", true},
		{"14.0.10", true},
		{"14.0.11", true},
		{"15.0.7", true},
		{"15.0.8", true},
		{"15.0.9", true},
		{"16.0.0", true},
		{"16.0.1", false},
		{"17.0.0", false},
	}

	for _, tc := range cases {
		gate := NewVersionGate(&fakeConfigStore{values: map[string]string{"version": tc.version}})
		got, err := gate.ShouldRun(context.Background())
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "version %q", tc.version)
	}
}

func TestVersionGateDefaultsToZero(t *testing.T) {
	gate := NewVersionGate(&fakeConfigStore{})
	got, err := gate.ShouldRun(context.Background())
	require.NoError(t, err)
	require.True(t, got, "missing version must count as 0.0.0")
}

func TestVersionGatePropagatesConfigError(t *testing.T) {
	readErr := errors.New("appconfig unavailable")
	gate := NewVersionGate(&fakeConfigStore{err: readErr})
	_, err := gate.ShouldRun(context.Background())
	require.ErrorIs(t, err, readErr)
}
