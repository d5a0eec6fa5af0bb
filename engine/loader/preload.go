package loader

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

func (l *loader) Preload(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	pool := worker.NewDynamicWorkerPool(min(l.workers, len(paths)), len(paths), 1*time.Second)
	defer pool.Stop()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	start := time.Now()
	for i, path := range paths {
		wg.Add(1)
		p := path
		pool.SubmitTask(worker.Task{
			ID:      i,
			Payload: p,
			Do: func() (any, error) {
				defer wg.Done()
				m, err := l.Load(p)
				if err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
					return nil, err
				}
				return m, nil
			},
		})
	}
	wg.Wait()

	log.Printf("[Loader] preloaded %d/%d models in %s", len(paths)-len(errs), len(paths), time.Since(start).Round(time.Millisecond))
	return errors.Join(errs...)
}
