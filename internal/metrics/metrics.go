package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RecordsUpserted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "farm_records_upserted_total", Help: "Total daily record upserts"},
	)
	TasksCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "farm_tasks_completed_total", Help: "Total task completions awarded"},
	)
	LevelUps = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "farm_level_ups_total", Help: "Total farmer level-ups"},
	)
	AdviceRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "farm_advice_requests_total", Help: "Advice requests by answer source"},
		[]string{"source"},
	)
	AlertsSent = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "farm_alerts_sent_total", Help: "Total alerts broadcast to notifiers"},
	)
)

func Register() {
	prometheus.MustRegister(RecordsUpserted, TasksCompleted, LevelUps, AdviceRequests, AlertsSent)
}
