package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/motoron.go/pkg/bus"
	"github.com/robotalks/motoron.go/pkg/motoron"
)

var (
	device     = "/dev/i2c-0"
	address    = uint(bus.DefaultI2CAddr)
	controller = motoron.M2T256.String()
)

func init() {
	flag.StringVar(&device, "device", device, "I2C bus device")
	flag.UintVar(&address, "address", address, "I2C address of the controller")
	flag.StringVar(&controller, "controller", controller, "Controller model")
}

func main() {
	flag.Parse()

	ct, err := motoron.ParseControllerType(controller)
	if err != nil {
		glog.Fatal(err)
	}
	t, err := bus.OpenI2C(device, uint16(address))
	if err != nil {
		glog.Fatalf("open %s: %v", device, err)
	}
	dev, err := motoron.New(t, ct)
	if err != nil {
		t.Close()
		glog.Fatal(err)
	}
	defer dev.Close()

	v, err := dev.FirmwareVersion()
	if err != nil {
		glog.Errorf("read firmware version: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	fmt.Println(v)
}
