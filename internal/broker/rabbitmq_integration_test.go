//go:build integration
// +build integration

package broker

/*

go test -tags=integration -v ./internal/broker -run TestRabbitMQ_PublishAndConsume -count=1

*/

import (
	"context"
	"fmt"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Starts a real RabbitMQ, publishes a snapshot body with the Publisher and
// consumes it back through the lib.
func TestRabbitMQ_PublishAndConsume(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "rabbitmq:3.13",
		ExposedPorts: []string{"5672/tcp"},
		WaitingFor:   wait.ForListeningPort("5672/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("start rabbit: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5672/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	uri := fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
	queue := "company_snapshots_test"

	pub, err := NewPublisher(uri, queue)
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	t.Cleanup(func() { _ = pub.Close() })

	conn, err := amqp.Dial(uri)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	ch, err := conn.Channel()
	if err != nil {
		t.Fatalf("channel: %v", err)
	}
	t.Cleanup(func() { _ = ch.Close() })

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		t.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(queue, "", true, false, false, false, nil)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}

	body := []byte(`[{"_id":"A1234567B","short_name":"Talleres Norte"}]`)
	headers := amqp.Table{"snapshot_size": int32(1)}
	if err := pub.Publish(ctx, body, headers); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case m := <-msgs:
		if string(m.Body) != string(body) {
			t.Fatalf("body mismatch: got=%q want=%q", m.Body, body)
		}
		if m.ContentType != "application/json" {
			t.Fatalf("content type: %q", m.ContentType)
		}
		if m.Headers["snapshot_size"] != int32(1) {
			t.Fatalf("header mismatch: %#v", m.Headers)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timeout waiting for message")
	}
}
