package usagepoller

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/alphagov/paas-nlu-usage/metering"
	"github.com/alphagov/paas-nlu-usage/nluusage"
)

const (
	DefaultSchedule = time.Duration(15 * time.Minute)
)

type state string

const (
	// Syncing state means that the poller has just started and will poll after InitialWaitTime
	Syncing state = "sync"
	// Scheduled means the last poll has finished and the next one is Schedule away
	Scheduled state = "waiting"
)

// Usage classes reported in the "usage" label of the gauges
const (
	AllUsage      = "all"
	BillableUsage = "billable"
)

// UsagePoller periodically asks a UsageClient for the current month's usage
// and exports it as prometheus gauges
type UsagePoller struct {
	state           state
	schedule        time.Duration
	initialWaitTime time.Duration
	logger          lager.Logger
	client          nluusage.UsageClient
	items           *prometheus.GaugeVec
	cost            *prometheus.GaugeVec
	mu              sync.Mutex
	polls           int
}

// Run polls until ctx is done. A failed poll is logged and retried on the
// next tick.
func (p *UsagePoller) Run(ctx context.Context) error {
	p.logger.Info("started")
	defer p.logger.Info("stopping")
	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		p.logger.Info("status", lager.Data{
			"state":     p.state,
			"next_poll": p.waitDuration().String(),
			"polls":     p.polls,
		})
		select {
		case <-time.After(p.waitDuration()):
			startTime := time.Now()
			p.state = Scheduled
			if err := p.poll(ctx); err != nil {
				p.logger.Error("poll-error", err)
				continue
			}
			p.polls++
			elapsed := time.Since(startTime)
			p.logger.Info("polled", lager.Data{
				"elapsed":        elapsed.String(),
				"elapsed_millis": int64(elapsed / time.Millisecond),
			})
		case <-ctx.Done():
			return nil
		}
	}
}

// poll fetches all and billable usage and updates both gauges. Neither gauge
// changes unless both fetches succeed.
func (p *UsagePoller) poll(ctx context.Context) error {
	snapshots := map[string]metering.Snapshot{}
	for usage, billableOnly := range map[string]bool{AllUsage: false, BillableUsage: true} {
		snapshot, err := p.client.GetUsage(ctx, nluusage.GetUsageOptions{BillableOnly: billableOnly})
		if err != nil {
			return err
		}
		snapshots[usage] = snapshot
	}
	for usage, snapshot := range snapshots {
		cost, _ := snapshot.TotalCost.Float64()
		p.items.WithLabelValues(usage).Set(float64(snapshot.ItemCount))
		p.cost.WithLabelValues(usage).Set(cost)
	}
	return nil
}

func (p *UsagePoller) waitDuration() time.Duration {
	if p.state == Syncing {
		return p.initialWaitTime
	}
	return p.schedule
}

type Config struct {
	Schedule        time.Duration
	InitialWaitTime time.Duration
	Logger          lager.Logger
	Client          nluusage.UsageClient
	// Registerer the gauges are registered with, defaults to prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
}

func New(cfg Config) (*UsagePoller, error) {
	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("usagepoller")
	}
	if cfg.Schedule == 0 {
		cfg.Schedule = DefaultSchedule
	}
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	items := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "nlu_usage_items",
		Help: "Items consumed by the service instance this month",
	}, []string{"usage"})
	cost := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "nlu_usage_cost",
		Help: "Cost reported for the service instance this month",
	}, []string{"usage"})
	for _, c := range []prometheus.Collector{items, cost} {
		if err := cfg.Registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return &UsagePoller{
		schedule:        cfg.Schedule,
		initialWaitTime: cfg.InitialWaitTime,
		logger:          cfg.Logger,
		client:          cfg.Client,
		items:           items,
		cost:            cost,
		state:           Syncing,
	}, nil
}
