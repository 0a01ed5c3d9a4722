// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	// orderWorker records its index into the shared order slice
	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := &Workers{workers: []Worker{
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	}}
	ws.Run(context.Background())

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Run_CalledOnce(t *testing.T) {
	w := &mockWorker{}
	ws := &Workers{workers: []Worker{w}}

	ws.Run(context.Background())

	if w.runCount != 1 {
		t.Errorf("expected Run to be called exactly once, got %d", w.runCount)
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := &Workers{workers: []Worker{w}}

	ws.Run(context.Background())
	ws.Run(context.Background())
	ws.Run(context.Background())

	if w.runCount != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", w.runCount)
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) {
	*o.order = append(*o.order, o.id)
}

func TestWorkers_Run_StopsOnCancelledContext(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ws.Run(ctx)

	if w.runCount != 0 {
		t.Errorf("expected no runs after cancel, got %d", w.runCount)
	}
}

func TestWorkers_Start_ClosesDone(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	<-ws.Start(context.Background())

	if w.runCount != 1 {
		t.Errorf("expected runCount=1, got %d", w.runCount)
	}
}
