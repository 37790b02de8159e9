package fsm_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

func benchDefinition(b *testing.B, guard fsm.Guard) *fsm.Definition {
	b.Helper()

	idle := fsm.StringState("idle")
	running := fsm.StringState("running")

	builder := fsm.NewBuilder("worker").WithInitialState(idle)
	builder.AddTransition(idle, running).When(guard).Done()
	builder.AddTransition(running, idle).When(guard).Done()

	def, err := builder.Build()
	if err != nil {
		b.Fatalf("failed to build definition: %v", err)
	}
	return def
}

func BenchmarkMachine_TryTransitionTo(b *testing.B) {
	ctx := context.Background()
	def := benchDefinition(b, nil)

	m, err := fsm.NewMachine(def)
	if err != nil {
		b.Fatalf("failed to create machine: %v", err)
	}

	idle := fsm.StringState("idle")
	running := fsm.StringState("running")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		// Cycle through states
		_ = m.TryTransitionTo(ctx, running, nil)
		_ = m.TryTransitionTo(ctx, idle, nil)
	}
}

func BenchmarkMachine_TryTransitionToWithGuard(b *testing.B) {
	ctx := context.Background()
	guard := func(ctx context.Context, data any) bool { return true }
	def := benchDefinition(b, guard)

	m, err := fsm.NewMachine(def)
	if err != nil {
		b.Fatalf("failed to create machine: %v", err)
	}

	idle := fsm.StringState("idle")
	running := fsm.StringState("running")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.TryTransitionTo(ctx, running, nil)
		_ = m.TryTransitionTo(ctx, idle, nil)
	}
}

func BenchmarkMachine_CanTransitionTo(b *testing.B) {
	ctx := context.Background()
	def := benchDefinition(b, nil)

	m, err := fsm.NewMachine(def)
	if err != nil {
		b.Fatalf("failed to create machine: %v", err)
	}

	running := fsm.StringState("running")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.CanTransitionTo(ctx, running, nil)
	}
}
