package portscan

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerConcurrentAdd(t *testing.T) {
	tr := NewTracker(500)

	var wg sync.WaitGroup
	for p := 500; p >= 1; p-- {
		wg.Add(1)
		go func(port int) {
			defer wg.Done()
			state := StateClosed
			if port%50 == 0 {
				state = StateOpen
			}
			tr.Add(Result{Port: port, State: state})
		}(p)
	}
	wg.Wait()

	all, open := tr.Close()
	assert.Len(t, all, 500)
	assert.Len(t, open, 10)
	assert.Equal(t, 50, open[0].Port)
	assert.Equal(t, 500, open[9].Port)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Port, all[i].Port)
	}
}

func TestTrackerDropsDuplicates(t *testing.T) {
	tr := NewTracker(2)
	tr.Add(Result{Port: 80, State: StateOpen})
	tr.Add(Result{Port: 80, State: StateClosed})

	all, open := tr.Close()
	assert.Len(t, all, 1)
	assert.Len(t, open, 1)
	assert.Equal(t, 1, tr.Len())
}
