package queries

import (
	"fmt"
	"strconv"

	"github.com/chrisaacson69/monopoly/platform/cache"
	"github.com/chrisaacson69/monopoly/platform/engine"
	"github.com/gomodule/redigo/redis"
)

// Redis layout per run: run.<code>.reports holds the final JSON payload,
// run.<code>.progress is a hash with fields total, short, long and
// watchers. runs.active lists the codes still being played.

const activeRunsKey = "runs.active"

func runReportsKey(code string) string {
	return fmt.Sprintf("run.%s.reports", code)
}

func runProgressKey(code string) string {
	return fmt.Sprintf("run.%s.progress", code)
}

func progressField(leaveJail int) string {
	if leaveJail == engine.LongJailStay {
		return "long"
	}
	return "short"
}

// RunReportsPayload builds the report JSON a run is served with, from
// the cache, the stored row or the run-complete event alike. Both
// reports are already JSON documents and are spliced in raw; one that
// has not been produced yet becomes an explicit null.
func RunReportsPayload(code string, short string, long string) string {
	if short == "" {
		short = "null"
	}
	if long == "" {
		long = "null"
	}
	return fmt.Sprintf(`{"code":%q,"short":%s,"long":%s}`, code, short, long)
}

func CacheRunReports(code string, payload string, conn *redis.Conn) bool {
	return cache.Set(runReportsKey(code), payload, conn)
}

func GetCachedRunReports(code string, conn *redis.Conn) (string, error) {
	return cache.Get(runReportsKey(code), conn)
}

func InitRunProgress(code string, rolls int64, conn *redis.Conn) {
	key := runProgressKey(code)
	cache.HSET(key, "total", 2*rolls, conn)
	cache.HSET(key, "short", 0, conn)
	cache.HSET(key, "long", 0, conn)
	cache.HSET(key, "watchers", 0, conn)
}

// StepRunProgress records how far one strategy has played.
func StepRunProgress(code string, leaveJail int, done int64, conn *redis.Conn) error {
	return cache.HSET(runProgressKey(code), progressField(leaveJail), done, conn)
}

// CompleteRunProgress pins both strategies to the end, covering trials
// between the last progress callback and the finish.
func CompleteRunProgress(code string, rolls int64, conn *redis.Conn) {
	key := runProgressKey(code)
	cache.HSET(key, "short", rolls, conn)
	cache.HSET(key, "long", rolls, conn)
}

// GetRunProgress sums both strategies into one done/total pair.
func GetRunProgress(code string, conn *redis.Conn) (done int64, total int64, err error) {
	key := runProgressKey(code)
	totalStr, err := cache.HGET(key, "total", conn)
	if err != nil {
		return 0, 0, err
	}
	total, err = strconv.ParseInt(totalStr, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	for _, field := range []string{"short", "long"} {
		val, err := cache.HGET(key, field, conn)
		if err != nil {
			return 0, 0, err
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, 0, err
		}
		done += n
	}
	return done, total, nil
}

// AddRunWatcher moves the watcher count by n and returns the new count.
func AddRunWatcher(code string, n int, conn *redis.Conn) (int, error) {
	return cache.HINCRBY(runProgressKey(code), "watchers", n, conn)
}

func MarkRunActive(code string, conn *redis.Conn) {
	cache.RPUSH(activeRunsKey, []interface{}{code}, conn)
}

func ClearRunActive(code string, conn *redis.Conn) error {
	return cache.LREM(activeRunsKey, code, conn)
}

func ActiveRuns(conn *redis.Conn) ([]string, error) {
	res, err := cache.LGET(activeRunsKey, conn)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(res))
	for _, val := range res {
		codes = append(codes, string(val.([]byte)))
	}
	return codes, nil
}

// DropRunCache forgets a run's cached state after deletion.
func DropRunCache(code string, conn *redis.Conn) {
	cache.Del(runReportsKey(code), conn)
	cache.Del(runProgressKey(code), conn)
	cache.LREM(activeRunsKey, code, conn)
}
