package worker

import (
	"context"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"basegraph.app/helpdesk/internal/queue"
)

var _ = Describe("RedisReclaimer", func() {
	var (
		ctx      context.Context
		client   *redis.Client
		consumer *queue.RedisConsumer
		handler  *mockHandler
	)

	BeforeEach(func() {
		server, err := miniredis.Run()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(server.Close)

		client = redis.NewClient(&redis.Options{Addr: server.Addr()})
		DeferCleanup(client.Close)

		ctx = context.Background()
		consumer, err = queue.NewRedisConsumer(client, queue.ConsumerConfig{
			Stream:    "tasks",
			Group:     "workers",
			Consumer:  "crashed",
			DLQStream: "tasks_dlq",
			BatchSize: 10,
			Block:     10 * time.Millisecond,
		})
		Expect(err).NotTo(HaveOccurred())
		handler = &mockHandler{}
	})

	It("reprocesses messages left pending by another consumer", func() {
		producer := queue.NewRedisProducer(client, "tasks", nil)
		Expect(producer.Enqueue(ctx, queue.Task{Type: queue.TaskTypeGenerateSummary, ConversationID: 77})).To(Succeed())

		// Read without acking, as a worker that died mid-task would.
		msgs, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(msgs).To(HaveLen(1))

		w := New(consumer, handler, Config{MaxAttempts: 3})
		r := NewRedisReclaimer(client, RedisReclaimerConfig{
			Stream:    "tasks",
			Group:     "workers",
			Consumer:  "rescuer",
			Interval:  time.Minute,
			BatchSize: 10,
		}, consumer, w.HandleMessage)

		Expect(r.reclaimOnce(ctx)).To(Succeed())
		Expect(handler.count()).To(Equal(1))
		Expect(handler.handled[0].ConversationID).To(Equal(int64(77)))

		pending, err := client.XPending(ctx, "tasks", "workers").Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(pending.Count).To(BeZero())
	})
})
