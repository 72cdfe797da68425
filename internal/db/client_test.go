package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type scriptedPinger struct {
	errs  []error
	calls int
}

func (p *scriptedPinger) Ping(_ context.Context) error {
	p.calls++
	if len(p.errs) == 0 {
		return nil
	}
	err := p.errs[0]
	p.errs = p.errs[1:]
	return err
}

func TestWaitReady(t *testing.T) {
	refused := errors.New("connection refused")

	tests := []struct {
		name          string
		errs          []error
		expectedErr   error
		expectedCalls int
	}{
		{
			name:          "ready at once",
			expectedCalls: 1,
		},
		{
			name:          "ready after retries",
			errs:          []error{refused, refused},
			expectedCalls: 3,
		},
		{
			name:          "never ready",
			errs:          []error{refused, refused, refused},
			expectedErr:   refused,
			expectedCalls: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &scriptedPinger{errs: tc.errs}

			err := waitReady(context.Background(), p, 3, time.Millisecond)

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Equal(t, tc.expectedCalls, p.calls)
		})
	}

	t.Run("context cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := &scriptedPinger{errs: []error{refused}}

		err := waitReady(ctx, p, 3, time.Hour)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, p.calls)
	})
}
