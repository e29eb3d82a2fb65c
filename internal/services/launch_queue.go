package services

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/SylleoYr/pegasus-frontend/pkg/logger"
)

// LaunchQueue serializes launch execution with a simple semaphore. Launching
// a game is an atomic foreground action: the process runner owns a single
// child at a time, so concurrent launch requests from the API queue up here
// instead of tripping the runner's one-process precondition.
type LaunchQueue struct {
	semaphore chan struct{}
	running   int
	queued    int
	mu        sync.Mutex
	logger    *logger.Logger
}

var (
	globalQueue *LaunchQueue
	queueOnce   sync.Once
)

// InitGlobalQueue initializes the global launch queue
func InitGlobalQueue() {
	queueOnce.Do(func() {
		globalQueue = &LaunchQueue{
			semaphore: make(chan struct{}, 1),
			logger:    logger.NewLogger(logrus.InfoLevel),
		}
		globalQueue.logger.Info("Launch queue initialized", logger.Fields{
			"max_concurrent": 1,
		})
	})
}

// GetGlobalQueue returns the global queue instance (initializes it if needed)
func GetGlobalQueue() *LaunchQueue {
	if globalQueue == nil {
		InitGlobalQueue()
	}
	return globalQueue
}

// ExecuteWithQueue wraps a launch execution with queue management.
// It blocks until the launch slot is free, then executes the function.
func (q *LaunchQueue) ExecuteWithQueue(fn func() error) error {
	q.mu.Lock()
	q.queued++
	currentQueued := q.queued
	currentRunning := q.running
	q.mu.Unlock()

	q.logger.Info("Launch added to queue", logger.Fields{
		"queued":  currentQueued,
		"running": currentRunning,
	})

	q.semaphore <- struct{}{}

	q.mu.Lock()
	q.queued--
	q.running++
	finalQueued := q.queued
	finalRunning := q.running
	q.mu.Unlock()

	q.logger.Info("Launch execution started", logger.Fields{
		"running": finalRunning,
		"queued":  finalQueued,
	})

	defer func() {
		<-q.semaphore
		q.mu.Lock()
		q.running--
		remainingRunning := q.running
		remainingQueued := q.queued
		q.mu.Unlock()

		q.logger.Info("Launch execution completed, slot released", logger.Fields{
			"running": remainingRunning,
			"queued":  remainingQueued,
		})
	}()

	return fn()
}

// GetStatus returns current queue status
func (q *LaunchQueue) GetStatus() (running, queued int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.running, q.queued
}
