// Package mqttbridge forwards tracker statuses published over MQTT onto the
// status topic.
package mqttbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	k "asset-tracker/internal/kafka"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/segmentio/kafka-go"
)

// DefaultTopic matches trackers/<device id>/status.
const DefaultTopic = "trackers/+/status"

var (
	ErrConnect      = errors.New("mqtt connect failed")
	ErrSubscribe    = errors.New("mqtt subscribe failed")
	ErrJSONParse    = errors.New("error parsing JSON")
	ErrUnknownTopic = errors.New("no device in topic")
	ErrWriteMessage = errors.New("error writing message")
)

type Config struct {
	BrokerURL string
	ClientID  string
	Topic     string
	QoS       byte

	Brokers        string
	PublisherTopic string
}

type Bridge struct {
	client mqtt.Client
	topic  string
	qos    byte
	writer k.Writer
}

func New(cfg Config) *Bridge {
	o := mqtt.NewClientOptions()
	o.AddBroker(cfg.BrokerURL)
	o.SetClientID(cfg.ClientID)
	o.SetConnectRetry(true)
	o.SetConnectRetryInterval(2 * time.Second)
	o.SetAutoReconnect(true)

	topic := cfg.Topic
	if topic == "" {
		topic = DefaultTopic
	}
	return &Bridge{
		client: mqtt.NewClient(o),
		topic:  topic,
		qos:    cfg.QoS,
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers: []string{cfg.Brokers},
			Topic:   cfg.PublisherTopic,
		}),
	}
}

// Run connects, subscribes and forwards messages until ctx ends.
func (b *Bridge) Run(ctx context.Context) error {
	const fn = "Bridge:Run"
	token := b.client.Connect()
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrConnect, token.Error())
	}
	defer b.client.Disconnect(250)

	token = b.client.Subscribe(b.topic, b.qos, func(_ mqtt.Client, msg mqtt.Message) {
		if err := b.handleMessage(ctx, msg.Topic(), msg.Payload()); err != nil {
			slog.ErrorContext(ctx, "Error forwarding tracker status", "topic", msg.Topic(), "error", err)
		}
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrSubscribe, token.Error())
	}
	slog.InfoContext(ctx, "Subscribed to MQTT topic", "topic", b.topic)

	<-ctx.Done()
	b.client.Unsubscribe(b.topic).WaitTimeout(time.Second)
	slog.InfoContext(ctx, "MQTT bridge stopped...")
	return nil
}

func (b *Bridge) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing bridge resources...")
	b.writer.Close()
}

// deviceFromTopic extracts the device id of trackers/<id>/status.
func deviceFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != "trackers" || parts[2] != "status" {
		return ""
	}
	return parts[1]
}

func (b *Bridge) handleMessage(ctx context.Context, topic string, payload []byte) error {
	const fn = "Bridge:handleMessage"
	var event k.StatusEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrJSONParse, err)
	}
	if event.DeviceID == "" {
		event.DeviceID = deviceFromTopic(topic)
	}
	if event.DeviceID == "" {
		return fmt.Errorf("%s:%w: %s", fn, ErrUnknownTopic, topic)
	}

	out, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrJSONParse, err)
	}
	if err := b.writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.DeviceID), Value: out}); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	return nil
}

// Publish sends a status to the tracker topic of its device, as a tracker
// would.
func Publish(client mqtt.Client, event k.StatusEvent, qos byte) error {
	const fn = "mqttbridge:Publish"
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrJSONParse, err)
	}
	token := client.Publish("trackers/"+event.DeviceID+"/status", qos, false, payload)
	token.Wait()
	return token.Error()
}
