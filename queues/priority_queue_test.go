package queues_test

import (
	"testing"

	"lazyseq/queues"
)

// Simple Task struct for testing
type Task struct {
	Name     string
	Priority int
}

func byPriority(a, b Task) bool {
	return a.Priority < b.Priority
}

func TestNewPriorityQueue_Validation(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewPriorityQueue should panic with nil less")
		}
	}()
	queues.NewPriorityQueue[int](10, nil)
}

func TestPriorityQueue_Ordering(t *testing.T) {
	tests := []struct {
		name     string
		less     func(a, b Task) bool
		inputs   []Task
		expected []string // Expected Names in order
	}{
		{
			name:     "Ascending",
			less:     byPriority,
			inputs:   []Task{{"A", 3}, {"B", 1}, {"C", 4}, {"D", 2}},
			expected: []string{"B", "D", "A", "C"},
		},
		{
			name:     "Descending",
			less:     func(a, b Task) bool { return a.Priority > b.Priority },
			inputs:   []Task{{"A", 3}, {"B", 1}, {"C", 4}, {"D", 2}},
			expected: []string{"C", "A", "D", "B"},
		},
		{
			name:     "Stable ties",
			less:     byPriority,
			inputs:   []Task{{"A", 2}, {"B", 1}, {"C", 2}, {"D", 1}, {"E", 2}},
			expected: []string{"B", "D", "A", "C", "E"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := queues.NewPriorityQueue(-1, tt.less)

			for _, task := range tt.inputs {
				pq.Enqueue(task)
			}

			if pq.Size() != len(tt.inputs) {
				t.Errorf("expected size %d, got %d", len(tt.inputs), pq.Size())
			}

			for _, expName := range tt.expected {
				val, ok := pq.Dequeue()
				if !ok {
					t.Fatalf("expected dequeue %s, got nothing", expName)
				}
				if val.Name != expName {
					t.Errorf("expected name %s, got %s (prio %d)", expName, val.Name, val.Priority)
				}
			}

			if !pq.IsEmpty() {
				t.Error("queue should be empty")
			}
		})
	}
}

func TestPriorityQueue_Empty(t *testing.T) {
	pq := queues.NewPriorityQueue(10, func(a, b int) bool { return a < b })

	if _, ok := pq.Dequeue(); ok {
		t.Error("Dequeue on empty should be false")
	}

	pq.Enqueue(100)
	if val, ok := pq.Dequeue(); !ok || val != 100 {
		t.Errorf("Dequeue expected 100, got %v", val)
	}
	if !pq.IsEmpty() {
		t.Error("queue should be empty after draining")
	}
}
