package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the farm registry.
// Tracks creations, updates, collected fees and per-operation latency.
type Metrics struct {
	FarmsCreated      prometheus.Counter
	FarmsUpdated      prometheus.Counter
	FeesCollected     prometheus.Counter
	CreateRejected    *prometheus.CounterVec
	UpdateRejected    prometheus.Counter
	OperationDuration *prometheus.HistogramVec
}

// New creates the registry metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FarmsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "agrotour_farms_created_total",
			Help: "Total number of farms registered",
		}),
		FarmsUpdated: f.NewCounter(prometheus.CounterOpts{
			Name: "agrotour_farms_updated_total",
			Help: "Total number of committed farm updates",
		}),
		FeesCollected: f.NewCounter(prometheus.CounterOpts{
			Name: "agrotour_registration_fees_collected_total",
			Help: "Sum of registration fees transferred to the authority contract",
		}),
		CreateRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "agrotour_farm_create_rejected_total",
			Help: "Rejected farm registrations by registry error code",
		}, []string{"code"}),
		UpdateRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "agrotour_farm_update_rejected_total",
			Help: "Rejected farm updates",
		}),
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agrotour_registry_operation_duration_seconds",
			Help:    "Duration of registry operations",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

// IncrementFarmCreated records a registration and the fee it collected.
func (m *Metrics) IncrementFarmCreated(fee uint64) {
	m.FarmsCreated.Inc()
	m.FeesCollected.Add(float64(fee))
}

func (m *Metrics) IncrementFarmUpdated() {
	m.FarmsUpdated.Inc()
}

// IncrementCreateRejected counts a rejection under its numeric code, or
// "internal" for infrastructure failures.
func (m *Metrics) IncrementCreateRejected(code string) {
	m.CreateRejected.WithLabelValues(code).Inc()
}

func (m *Metrics) IncrementUpdateRejected() {
	m.UpdateRejected.Inc()
}

// ObserveOperation records the duration of a registry operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
