package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/robotalks/motoron.go/pkg/bridge/comm/mqtt"
	"github.com/robotalks/motoron.go/pkg/bridge/msgs"
	fx "github.com/robotalks/motoron.go/pkg/framework"
)

var (
	mqttURL = mqtt.DefaultBrokerURL
)

func init() {
	if val := os.Getenv("MOTORON_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func logMessage(topic string, payload []byte) {
	if strings.HasSuffix(topic, "/meta") {
		log.Printf("%s: %s", topic, string(payload))
		return
	}
	typed, err := msgs.DecodeTyped(payload)
	if err != nil {
		log.Printf("%s: bad message: %v", topic, err)
		return
	}
	msg, err := typed.Decode()
	if err != nil {
		log.Printf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
		return
	}
	log.Printf("%s: #%d [%s] %s", topic, typed.Sequence, msgs.TypeName(msg),
		msg.(msgs.SerializableMessage).Serializable().String())
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	mon, err := mqtt.NewMonitor(mqttURL, logMessage)
	if err != nil {
		log.Fatalln(err)
	}
	if err := fx.NewRunner().HandleSignals().Go(mon).Wait(); err != nil {
		log.Fatalln(err)
	}
}
