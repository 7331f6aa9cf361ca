package mq_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/mq"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/ptr"
)

func TestBuildRecord(t *testing.T) {
	t.Run("Should copy topic, payload, headers and key", func(t *testing.T) {
		rec := mq.BuildRecord(mq.ProduceMsg{
			Topic:        "invoice.created",
			Headers:      map[string]string{"X-Correlation-ID": "c-1", "traceparent": "00-abc"},
			Payload:      []byte(`{"factura_id":1}`),
			PartitionKey: ptr.New("1"),
		})

		assert.Equal(t, "invoice.created", rec.Topic)
		assert.Equal(t, []byte(`{"factura_id":1}`), rec.Value)
		assert.Equal(t, []byte("1"), rec.Key)

		keys := make([]string, 0, len(rec.Headers))
		for _, h := range rec.Headers {
			keys = append(keys, h.Key)
		}
		sort.Strings(keys)
		assert.Equal(t, []string{"X-Correlation-ID", "traceparent"}, keys)
	})

	t.Run("Should leave key empty without partition key", func(t *testing.T) {
		rec := mq.BuildRecord(mq.ProduceMsg{Topic: "t"})
		assert.Nil(t, rec.Key)
		assert.Empty(t, rec.Headers)
	})
}

func TestRecordHeaders(t *testing.T) {
	rec := &kgo.Record{Headers: []kgo.RecordHeader{
		{Key: "a", Value: []byte("1")},
		{Key: "b", Value: []byte("2")},
		{Key: "a", Value: []byte("3")},
	}}

	assert.Equal(t, map[string]string{"a": "3", "b": "2"}, mq.RecordHeaders(rec))
}
