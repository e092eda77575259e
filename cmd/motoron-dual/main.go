package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/motoron.go/pkg/framework"
	"github.com/robotalks/motoron.go/pkg/motoron"
)

var (
	busURL     = "i2c:///dev/i2c-1?addr=0x10"
	controller = motoron.M2T256.String()
	speed1     = 0.5
	speed2     = 0.8
	interval   = 10 * time.Millisecond
)

func init() {
	if val := os.Getenv("MOTORON_BUS"); val != "" {
		busURL = val
	}
	if val := os.Getenv("MOTORON_CONTROLLER"); val != "" {
		controller = val
	}
	flag.StringVar(&busURL, "bus", busURL, "Bus URL")
	flag.StringVar(&controller, "controller", controller, "Controller model, with 2 motors")
	flag.Float64Var(&speed1, "speed1", speed1, "Speed of motor 1")
	flag.Float64Var(&speed2, "speed2", speed2, "Speed of motor 2")
	flag.DurationVar(&interval, "interval", interval, "Interval of speed commands")
}

func main() {
	flag.Parse()

	ct, err := motoron.ParseControllerType(controller)
	if err != nil {
		glog.Fatal(err)
	}
	dev, err := motoron.Open(ct, busURL)
	if err != nil {
		glog.Fatal(err)
	}
	defer dev.Close()

	if err := dev.Reinitialise(); err != nil {
		glog.Fatal(err)
	}
	if err := dev.ClearResetFlag(); err != nil {
		glog.Fatal(err)
	}

	drive := fx.NewPeriodic(interval, func(context.Context, time.Time) error {
		return dev.SetAllSpeeds(speed1, speed2)
	})
	drive.StopOnError = true
	err = fx.NewRunner().HandleSignals().Go(fx.NamedRun("drive", drive)).Wait()
	if cerr := dev.CoastNow(); cerr != nil {
		glog.Errorf("coast: %v", cerr)
	}
	if err != nil {
		glog.Fatal(err)
	}
}
