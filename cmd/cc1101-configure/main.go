// Command cc1101-configure programs a CC1101 from a YAML radio profile.
package main

import (
	"flag"
	"net/http"

	"github.com/hatstand/cc1101"
	"github.com/hatstand/cc1101/config"
	"github.com/hatstand/cc1101/spibus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var configPath = flag.String("config", "radio.yaml", "Path to the radio profile")
var driver = flag.String("driver", "", "Override the SPI driver from the profile")
var device = flag.String("device", "", "Override the SPI device from the profile")
var reset = flag.Bool("reset", false, "Reset the chip before applying the profile")
var metricsAddr = flag.String("metrics-addr", "", "If set, keep running and serve bus metrics on this address")
var verbose = flag.Bool("verbose", false, "Log every SPI transfer")

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	if *verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}

func main() {
	flag.Parse()
	log := newLogger()
	defer log.Sync()
	zap.ReplaceGlobals(log)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load profile", zap.Error(err))
	}
	if *driver != "" {
		cfg.Bus.Driver = *driver
	}
	if *device != "" {
		cfg.Bus.Device = *device
	}

	raw, err := spibus.Open(cfg.Bus.Driver, cfg.Bus.Device, cfg.Bus.SpeedHertz)
	if err != nil {
		log.Fatal("Failed to open SPI bus", zap.Error(err), zap.String("driver", cfg.Bus.Driver))
	}
	bus := spibus.Instrument(raw, spibus.NewMetrics(prometheus.DefaultRegisterer))
	defer bus.Close()

	radio := cc1101.New(bus, cc1101.WithCrystal(cfg.Radio.Crystal()))
	if *reset {
		if err := radio.Reset(); err != nil {
			log.Fatal("Failed to reset chip", zap.Error(err))
		}
	}
	if err := radio.SelfTest(); err != nil {
		log.Fatal("Self test failed", zap.Error(err))
	}
	if err := cfg.Radio.Apply(radio, log); err != nil {
		log.Fatal("Failed to apply profile", zap.Error(err))
	}
	summary, err := radio.Describe()
	if err != nil {
		log.Fatal("Failed to read back configuration", zap.Error(err))
	}
	log.Info("Configured radio", zap.String("radio", summary))

	if *metricsAddr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	log.Info("Serving metrics", zap.String("addr", *metricsAddr))
	if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
		log.Fatal("Metrics server failed", zap.Error(err))
	}
}
