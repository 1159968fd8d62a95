// Package workers runs the asynchronous location-resolution boundary:
// free-text zip codes are turned into coordinates off the caller's
// goroutine and delivered through a callback, the way the rest of the
// app consumes them.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/musicmaps/musicmaps-backend/models"
	"github.com/musicmaps/musicmaps-backend/utils"
)

// Resolver turns an address or zip code into coordinates. It is
// implemented outside this library, typically over a network
// geocoding service, and may block until its context expires.
type Resolver interface {
	Resolve(ctx context.Context, query string) (models.Location, error)
}

// LookupJob is one queued resolution request.
type LookupJob struct {
	Query   string
	Deliver func(models.Location)
}

// GeocodeDispatcher owns a queue of lookups and the workers that
// resolve them. Results always arrive via the job callback: the
// resolved location on success, the {-1, -1} sentinel on resolver
// failure or timeout.
type GeocodeDispatcher struct {
	JobQueue chan LookupJob
	Resolver Resolver
	Timeout  time.Duration
	Wg       sync.WaitGroup
	StopChan chan struct{}
	Pending  map[string]bool
	Mutex    sync.Mutex
}

// NewGeocodeDispatcher starts numWorkers workers over a queue of
// queueSize. timeout bounds each individual resolver call.
func NewGeocodeDispatcher(resolver Resolver, queueSize, numWorkers int, timeout time.Duration) *GeocodeDispatcher {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if queueSize <= 0 {
		queueSize = 10
	}
	d := &GeocodeDispatcher{
		JobQueue: make(chan LookupJob, queueSize),
		Resolver: resolver,
		Timeout:  timeout,
		StopChan: make(chan struct{}),
		Pending:  make(map[string]bool),
	}
	d.Wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go d.worker(i)
	}
	logrus.WithFields(logrus.Fields{
		"workers":    numWorkers,
		"queue_size": queueSize,
	}).Info("started geocode worker(s)")
	return d
}

// Enqueue schedules resolution of query. A query that is not a valid
// 5-digit zip code is not geocoded at all: deliver is called
// immediately with fallback (usually a device-reported location, or
// the {-1, -1} sentinel). Returns false if the queue is full or the
// dispatcher is stopping, in which case deliver is also called with
// fallback so every caller receives exactly one location.
func (d *GeocodeDispatcher) Enqueue(query string, fallback models.Location, deliver func(models.Location)) bool {
	if !utils.IsZipCode(query) {
		deliver(fallback)
		return false
	}

	select {
	case <-d.StopChan:
		deliver(fallback)
		return false
	default:
	}

	select {
	case d.JobQueue <- LookupJob{Query: query, Deliver: deliver}:
		return true
	default:
		logrus.WithField("query", query).Warn("geocode queue full, using fallback location")
		deliver(fallback)
		return false
	}
}

func (d *GeocodeDispatcher) worker(id int) {
	defer d.Wg.Done()
	for {
		select {
		case <-d.StopChan:
			return
		case job, ok := <-d.JobQueue:
			if !ok {
				return
			}
			d.process(id, job)
		}
	}
}

func (d *GeocodeDispatcher) process(id int, job LookupJob) {
	d.Mutex.Lock()
	if d.Pending[job.Query] {
		// a lookup for the same query is already in flight; resolve
		// again anyway, callbacks are per caller
		logrus.WithField("query", job.Query).Debug("duplicate geocode lookup in flight")
	}
	d.Pending[job.Query] = true
	d.Mutex.Unlock()

	defer func() {
		d.Mutex.Lock()
		delete(d.Pending, job.Query)
		d.Mutex.Unlock()
	}()

	ctx := context.Background()
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	location, err := d.Resolver.Resolve(ctx, job.Query)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"worker": id,
			"query":  job.Query,
		}).Warn("geocode lookup failed")
		job.Deliver(models.UnresolvedLocation())
		return
	}
	job.Deliver(location)
}

// Stop signals the workers and waits for in-flight lookups to finish.
// Queued jobs that have not started are abandoned; their callers fall
// back via Enqueue's stop path only if they enqueue after Stop.
func (d *GeocodeDispatcher) Stop() {
	close(d.StopChan)
	d.Wg.Wait()
	logrus.Info("geocode workers stopped")
}
