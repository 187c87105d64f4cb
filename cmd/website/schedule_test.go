package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnTicksDiscardsTickDuringRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks := make(chan time.Time, 1)
	ticks <- time.Now()

	runs := 0

	runOnTicks(ctx, ticks, func() {
		runs++

		// another tick lands while this run is still working
		ticks <- time.Now()
		cancel()
	})

	assert.Equal(t, 1, runs)
	assert.Empty(t, ticks)
}

func TestRunOnTicksStopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runs := 0
	runOnTicks(ctx, make(chan time.Time), func() { runs++ })

	assert.Equal(t, 0, runs)
}
