package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	k "asset-tracker/internal/kafka"
	"asset-tracker/internal/mqttbridge"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Plays a tracker: publishes a few statuses around Bochum over MQTT.
func main() {
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	device := flag.String("device", "350000000000001", "tracker IMEI")
	count := flag.Int("count", 5, "number of statuses to publish")
	interval := flag.Duration("interval", 2*time.Second, "pause between statuses")
	cellsOnly := flag.Bool("cells-only", false, "send cell identities instead of a position")
	flag.Parse()

	o := mqtt.NewClientOptions()
	o.AddBroker(*broker)
	o.SetClientID("tracker-" + *device)
	client := mqtt.NewClient(o)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	defer client.Disconnect(250)

	lat, lon := 51.4818, 7.2162
	for i := range *count {
		temp := 18 + rand.Float64()*6
		event := k.StatusEvent{
			DeviceID:  *device,
			Timestamp: time.Now().Unix(),
			Lat:       lat + (rand.Float64()-0.5)/100,
			Lon:       lon + (rand.Float64()-0.5)/100,
			Radius:    300 + rand.Float64()*700,
			Voltage:   7.4 + rand.Float64(),
			Temp:      &temp,
			City:      "Bochum",
			Country:   "Germany",
			Cells: []k.Cell{
				{Lat: lat + 0.01, Lon: lon, Radius: 1500, Rxl: 28},
				{Lat: lat, Lon: lon - 0.01, Radius: 2500, Rxl: 19},
			},
		}
		if *cellsOnly {
			// Towers of the sample import in scripts/celltowers.
			event.Lat, event.Lon, event.Radius = 0, 0, 0
			event.Cells = []k.Cell{
				{MCC: 262, MNC: 2, LAC: 1101, CID: 20511, Rxl: 20 + rand.IntN(15)},
				{MCC: 262, MNC: 1, LAC: 40100, CID: 3321, Rxl: 10 + rand.IntN(15)},
				{MCC: 262, MNC: 3, LAC: 5120, CID: 771, Rxl: 5 + rand.IntN(15)},
			}
		}
		if err := mqttbridge.Publish(client, event, 1); err != nil {
			panic(err)
		}
		fmt.Printf("Published status %d of %d for %s at %d\n", i+1, *count, *device, event.Timestamp)
		if i < *count-1 {
			time.Sleep(*interval)
		}
	}
}
