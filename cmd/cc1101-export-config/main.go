// Command cc1101-export-config prints the configuration registers and power
// table of a CC1101.
package main

import (
	"flag"
	"fmt"

	"github.com/hatstand/cc1101"
	"github.com/hatstand/cc1101/spibus"
	"github.com/hatstand/cc1101/units"
	"go.uber.org/zap"
)

var driver = flag.String("driver", spibus.DriverPeriph, "SPI driver: periph or embd")
var device = flag.String("device", "", "SPI port name (periph) or chip select channel (embd)")
var speed = flag.Int64("speed", 50000, "SPI clock in hertz")
var crystal = flag.Float64("crystal", float64(units.DefaultCrystal), "Crystal oscillator frequency in hertz")
var verbose = flag.Bool("verbose", false, "Log every SPI transfer")

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !*verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
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

	bus, err := spibus.Open(*driver, *device, *speed)
	if err != nil {
		log.Fatal("Failed to open SPI bus", zap.Error(err))
	}
	defer bus.Close()

	radio := cc1101.New(bus, cc1101.WithCrystal(units.Crystal(*crystal)))
	if err := radio.SelfTest(); err != nil {
		log.Fatal("Self test failed", zap.Error(err))
	}

	values, err := radio.GetConfigurationRegisterValues()
	if err != nil {
		log.Fatal("Failed to read configuration registers", zap.Error(err))
	}
	for _, v := range values {
		fmt.Printf("%-8s 0x%02x 0b%08b\n", v.Address, v.Value, v.Value)
	}

	power, err := radio.GetOutputPower()
	if err != nil {
		log.Fatal("Failed to read PATABLE", zap.Error(err))
	}
	fmt.Printf("PATABLE  %s\n", cc1101.FormatPATable(power, true))

	summary, err := radio.Describe()
	if err != nil {
		log.Fatal("Failed to describe radio", zap.Error(err))
	}
	fmt.Println(summary)
}
