package autoreset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEventOptions(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts []Option
		want eventOptions
	}{
		{name: `defaults`},
		{name: `nil options skipped`, opts: []Option{nil, WithSignalled(true), nil}, want: eventOptions{signalled: true}},
		{name: `last wins`, opts: []Option{WithSignalled(true), WithSignalled(false)}},
		{name: `nil logger`, opts: []Option{WithLogger(nil), WithSignalled(true)}, want: eventOptions{signalled: true}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := resolveEventOptions(tc.opts)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, *cfg, cmp.AllowUnexported(eventOptions{})); diff != `` {
				t.Errorf("unexpected options (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveEventOptions_error(t *testing.T) {
	expected := errors.New(`some error`)
	_, err := resolveEventOptions([]Option{&optionImpl{func(*eventOptions) error { return expected }}})
	assert.Same(t, expected, err)

	ev, err := New(&optionImpl{func(*eventOptions) error { return expected }})
	assert.Nil(t, ev)
	assert.Same(t, expected, err)
}

func TestWithLogger(t *testing.T) {
	logger := logiface.New[logiface.Event](
		logiface.WithWriter[logiface.Event](logiface.NewWriterFunc(func(event logiface.Event) error {
			return nil
		})),
	)
	cfg, err := resolveEventOptions([]Option{WithLogger(logger)})
	require.NoError(t, err)
	assert.Same(t, logger, cfg.logger)
}
