package helper

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var dashboardCron *cron.Cron

// StartDashboardRefresh runs broadcast on a fixed interval so connected
// dashboards repaint even when nothing changed. The job only reads; all
// mutation happens in handlers.
func StartDashboardRefresh(every time.Duration, broadcast func()) {
	dashboardCron = cron.New(cron.WithSeconds(), cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	spec := "@every " + every.String()
	if _, err := dashboardCron.AddFunc(spec, broadcast); err != nil {
		log.Printf("dashboard refresh scheduler failed to start: %v", err)
		return
	}

	dashboardCron.Start()
	log.Printf("dashboard refresh scheduler started (%s)", every)
}

func StopDashboardRefresh() {
	if dashboardCron != nil {
		dashboardCron.Stop()
	}
}

var outboxScheduler gocron.Scheduler

// StartOutboxWorker periodically flushes the simulated mail outbox. The
// flush callback delivers every message whose simulated latency has elapsed.
func StartOutboxWorker(every time.Duration, flush func()) {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("outbox scheduler init failed: %v", err)
		return
	}

	if _, err := s.NewJob(gocron.DurationJob(every), gocron.NewTask(flush)); err != nil {
		log.Printf("outbox job registration failed: %v", err)
		return
	}

	outboxScheduler = s
	s.Start()
	log.Printf("outbox delivery worker started (%s)", every)
}

func StopOutboxWorker() {
	if outboxScheduler != nil {
		if err := outboxScheduler.Shutdown(); err != nil {
			log.Printf("outbox scheduler shutdown: %v", err)
		}
	}
}
