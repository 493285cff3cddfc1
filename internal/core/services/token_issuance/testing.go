package tokenissuance

import "sync"

type FakeOutcomeRecorder struct {
	Recorded map[string]int
	lock     sync.Mutex
}

func NewFakeOutcomeRecorder() *FakeOutcomeRecorder {
	return &FakeOutcomeRecorder{Recorded: make(map[string]int)}
}

func (r *FakeOutcomeRecorder) RecordOutcome(purpose string, outcome string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Recorded[purpose+"/"+outcome]++
}

func (r *FakeOutcomeRecorder) Count(purpose string, outcome string) int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Recorded[purpose+"/"+outcome]
}
