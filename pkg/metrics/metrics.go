package metrics

import (
	"sync/atomic"
)

type Metrics struct {
	booksCreatedTotal   int64
	booksDeletedTotal   int64
	logsCreatedTotal    int64
	broadcastsTotal     int64
	broadcastFailsTotal int64
	activeConnections   int64
}

var global = &Metrics{}

func IncrementBooksCreated() {
	atomic.AddInt64(&global.booksCreatedTotal, 1)
}

func IncrementBooksDeleted() {
	atomic.AddInt64(&global.booksDeletedTotal, 1)
}

func IncrementLogsCreated() {
	atomic.AddInt64(&global.logsCreatedTotal, 1)
}

func IncrementBroadcasts() {
	atomic.AddInt64(&global.broadcastsTotal, 1)
}

func IncrementBroadcastFails() {
	atomic.AddInt64(&global.broadcastFailsTotal, 1)
}

func SetActiveConnections(count int64) {
	atomic.StoreInt64(&global.activeConnections, count)
}

func GetBooksCreated() int64 {
	return atomic.LoadInt64(&global.booksCreatedTotal)
}

func GetBooksDeleted() int64 {
	return atomic.LoadInt64(&global.booksDeletedTotal)
}

func GetLogsCreated() int64 {
	return atomic.LoadInt64(&global.logsCreatedTotal)
}

func GetBroadcasts() int64 {
	return atomic.LoadInt64(&global.broadcastsTotal)
}

func GetBroadcastFails() int64 {
	return atomic.LoadInt64(&global.broadcastFailsTotal)
}

func GetActiveConnections() int64 {
	return atomic.LoadInt64(&global.activeConnections)
}

func Reset() {
	atomic.StoreInt64(&global.booksCreatedTotal, 0)
	atomic.StoreInt64(&global.booksDeletedTotal, 0)
	atomic.StoreInt64(&global.logsCreatedTotal, 0)
	atomic.StoreInt64(&global.broadcastsTotal, 0)
	atomic.StoreInt64(&global.broadcastFailsTotal, 0)
	atomic.StoreInt64(&global.activeConnections, 0)
}
