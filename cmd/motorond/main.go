package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/motoron.go/pkg/bridge"
	"github.com/robotalks/motoron.go/pkg/bridge/comm"
	"github.com/robotalks/motoron.go/pkg/bridge/comm/mqtt"
	"github.com/robotalks/motoron.go/pkg/bridge/comm/stream"
	"github.com/robotalks/motoron.go/pkg/bridge/comm/websocket"
	fx "github.com/robotalks/motoron.go/pkg/framework"
)

//go-build: CGO_ENABLED=0

var configFile string

func init() {
	flag.StringVar(&configFile, "config", configFile, "TOML config file")
	bridge.SetupFlags()
}

func main() {
	flag.Parse()

	conf := bridge.NewConfig()
	if configFile != "" {
		if err := conf.LoadFile(configFile); err != nil {
			glog.Fatal(err)
		}
	}
	if err := conf.Validate(); err != nil {
		glog.Fatal(err)
	}

	dev, err := conf.OpenDevice()
	if err != nil {
		glog.Fatal(err)
	}
	defer dev.Close()

	var firmware string
	if v, err := dev.FirmwareVersion(); err != nil {
		glog.Warningf("read firmware version: %v", err)
	} else {
		firmware = v.String()
		glog.Infof("firmware: %s", firmware)
	}

	hub := comm.NewHub(nil)
	worker := bridge.NewWorker(dev, hub)
	worker.Keepalive = conf.Keepalive.Duration
	worker.StatusInterval = conf.StatusInterval.Duration
	worker.CommandTimeout = conf.CommandTimeout.Duration
	worker.ClearReset = conf.ClearReset
	hub.Handler = worker

	runner := fx.NewRunner().HandleSignals()
	runner.Go(worker)
	if conf.MQTT != "" {
		reg, err := mqtt.NewRegistrar(conf.MQTT, conf.DeviceInfo(dev, firmware), hub)
		if err != nil {
			glog.Fatalf("create MQTT registrar: %v", err)
		}
		runner.Go(reg)
	}
	if conf.ListenWS != "" {
		runner.Go(&websocket.Listener{Addr: conf.ListenWS, Hub: hub})
	}
	if conf.ListenTCP != "" {
		runner.Go(&stream.Listener{Addr: conf.ListenTCP, Hub: hub})
	}

	err = runner.Wait()
	if cerr := dev.CoastNow(); cerr != nil {
		glog.Errorf("coast: %v", cerr)
	}
	if err != nil {
		glog.Fatal(err)
	}
}
