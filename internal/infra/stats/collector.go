// Package stats refreshes the business gauges exported on /metrics by
// counting rows on a schedule.
package stats

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"mig-catalog/internal/observability/metrics"
)

// DefaultSchedule refreshes the gauges once a minute.
const DefaultSchedule = "@every 1m"

const refreshTimeout = 30 * time.Second

// UserCounter counts registered accounts.
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

// ItemCounter counts catalog items.
type ItemCounter interface {
	Count(ctx context.Context) (int64, error)
}

// OrderCounter counts orders grouped by status.
type OrderCounter interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// ArticleCounter counts news articles.
type ArticleCounter interface {
	Count(ctx context.Context, publishedOnly bool) (int64, error)
}

// Collector periodically counts users, items, orders and articles and
// publishes the results as Prometheus gauges. When DB is set it also
// reports connection pool usage.
type Collector struct {
	Users    UserCounter
	Items    ItemCounter
	Orders   OrderCounter
	Articles ArticleCounter
	DB       *sql.DB
	Logger   *slog.Logger

	cron *cron.Cron
}

// Start schedules the refresh job and runs one refresh immediately so
// the gauges are populated before the first tick. The returned stop
// function waits for a running refresh to finish.
func (c *Collector) Start(schedule string) (func(), error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	c.cron = cron.New()
	if _, err := c.cron.AddFunc(schedule, c.Refresh); err != nil {
		return nil, err
	}

	c.Refresh()
	c.cron.Start()

	return func() {
		<-c.cron.Stop().Done()
	}, nil
}

// Refresh counts everything once and updates the gauges. Failures are
// logged and leave the previous gauge values in place.
func (c *Collector) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	logger := c.logger()

	if count, err := c.Users.Count(ctx); err != nil {
		logger.Warn("stats refresh: count users failed", "error", err.Error())
	} else {
		metrics.SetUsersTotal(count)
	}

	if count, err := c.Items.Count(ctx); err != nil {
		logger.Warn("stats refresh: count items failed", "error", err.Error())
	} else {
		metrics.SetItemsTotal(count)
	}

	if byStatus, err := c.Orders.CountByStatus(ctx); err != nil {
		logger.Warn("stats refresh: count orders failed", "error", err.Error())
	} else {
		for status, count := range byStatus {
			metrics.SetOrdersTotal(status, count)
		}
	}

	if count, err := c.Articles.Count(ctx, false); err != nil {
		logger.Warn("stats refresh: count articles failed", "error", err.Error())
	} else {
		metrics.SetNewsTotal(count)
	}

	if c.DB != nil {
		dbStats := c.DB.Stats()
		metrics.SetDBConnections(dbStats.InUse, dbStats.Idle)
	}
}

func (c *Collector) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
