// Copyright 2026 The FrameCheck Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package framecheck

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/framecheck/framecheck/dataset"
)

// SuitePool runs independent validation suites concurrently with a bounded
// level of parallelism. Each suite's own run stays strictly sequential;
// only whole suites execute in parallel, which is safe because every suite
// reads its own dataset snapshot.
type SuitePool struct {
	semaphore chan struct{}
	logger    *slog.Logger
	wg        sync.WaitGroup
	mu        sync.Mutex
	reports   map[string]*Report
	errors    []error
}

func NewSuitePool(poolSize int, logger *slog.Logger) *SuitePool {
	if logger == nil {
		// noop logger by default
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &SuitePool{
		semaphore: make(chan struct{}, poolSize),
		logger:    logger,
		reports:   make(map[string]*Report),
	}
}

// Enqueue schedules one suite run. The suite's report is collected under
// its name once the run finishes; run errors are collected rather than
// aborting sibling suites.
func (p *SuitePool) Enqueue(name string, v *Validator, opts RunOptions) {
	p.wg.Add(1)
	go func() {
		p.semaphore <- struct{}{}
		defer func() {
			<-p.semaphore
			p.wg.Done()
		}()

		p.logger.Debug("running suite", "suite", name)
		startTime := time.Now()
		err := v.Run(opts)
		elapsed := time.Since(startTime).Milliseconds()

		p.mu.Lock()
		defer p.mu.Unlock()
		p.reports[name] = v.GetReport()
		if err != nil {
			p.logger.Error("suite failed", "suite", name, "error", err.Error())
			p.errors = append(p.errors, fmt.Errorf("suite %q: %w", name, err))
			return
		}
		p.logger.Debug("completed suite", "suite", name, "elapsed_ms", elapsed)
	}()
}

// Join blocks until every enqueued suite finished.
func (p *SuitePool) Join() {
	p.wg.Wait()
}

// Reports returns the collected reports keyed by suite name.
func (p *SuitePool) Reports() map[string]*Report {
	p.mu.Lock()
	defer p.mu.Unlock()

	reports := make(map[string]*Report, len(p.reports))
	for name, report := range p.reports {
		reports[name] = report
	}
	return reports
}

// Errors returns the run errors collected so far.
func (p *SuitePool) Errors() []error {
	p.mu.Lock()
	defer p.mu.Unlock()

	errsCopy := make([]error, len(p.errors))
	copy(errsCopy, p.errors)
	return errsCopy
}

// RunSuites builds and executes every suite of a definition file against
// its dataset, up to poolSize suites at a time. Datasets are matched to
// suites by name. Build failures and missing datasets surface in the
// returned error slice alongside run failures.
func RunSuites(cfg *SuiteFileConfig, datasets map[string]dataset.Dataset, poolSize int, logger *slog.Logger, opts RunOptions) (map[string]*Report, []error) {
	pool := NewSuitePool(poolSize, logger)

	var buildErrors []error
	for i := range cfg.Suites {
		suite := &cfg.Suites[i]

		ds, ok := datasets[suite.Name]
		if !ok {
			buildErrors = append(buildErrors, fmt.Errorf("suite %q: no dataset provided", suite.Name))
			continue
		}

		v, err := suite.Build(ds, logger)
		if err != nil {
			buildErrors = append(buildErrors, err)
			continue
		}
		pool.Enqueue(suite.Name, v, opts)
	}

	pool.Join()
	return pool.Reports(), append(buildErrors, pool.Errors()...)
}
