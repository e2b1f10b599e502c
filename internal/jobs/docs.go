// Package jobs provides the scheduled background tasks of the tracking
// service, built on github.com/robfig/cron/v3.
//
// DispatchJob runs every second and matches the oldest pending order with
// the best available delivery partner. MovementJob is the demo companion:
// it walks assigned partners along their routes every second so dashboards
// have something to watch without real devices pushing samples. Movement is
// disabled unless the simulation flag is set at startup.
//
// Jobs are wired and controlled through JobManager:
//
//	manager := jobs.NewJobManager(dispatchHandler, movementHandler, simulate, logger)
//	if err := manager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer manager.StopAll()
package jobs
