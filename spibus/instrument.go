package spibus

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	transfers *prometheus.CounterVec
	bytes     prometheus.Counter
	latency   prometheus.Histogram
}

// NewMetrics registers the bus collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		transfers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cc1101",
			Subsystem: "spi",
			Name:      "transfers_total",
			Help:      "SPI transfers issued to the transceiver, by result.",
		}, []string{"result"}),
		bytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "cc1101",
			Subsystem: "spi",
			Name:      "transfer_bytes_total",
			Help:      "Bytes clocked out to the transceiver including header bytes.",
		}),
		latency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cc1101",
			Subsystem: "spi",
			Name:      "transfer_duration_seconds",
			Help:      "Duration of a single SPI transfer.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 8),
		}),
	}
}

// InstrumentedBus counts every transfer passing through it.
type InstrumentedBus struct {
	bus     Bus
	metrics *Metrics
}

func Instrument(bus Bus, metrics *Metrics) *InstrumentedBus {
	return &InstrumentedBus{bus: bus, metrics: metrics}
}

func (b *InstrumentedBus) TransferAndReceiveData(data []byte) error {
	start := time.Now()
	err := b.bus.TransferAndReceiveData(data)
	b.metrics.latency.Observe(time.Since(start).Seconds())
	b.metrics.bytes.Add(float64(len(data)))
	result := "ok"
	if err != nil {
		result = "error"
	}
	b.metrics.transfers.WithLabelValues(result).Inc()
	return err
}

// Close closes the underlying bus if it can be closed.
func (b *InstrumentedBus) Close() error {
	if c, ok := b.bus.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
