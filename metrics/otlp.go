package metrics

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/xid"
	"golang.org/x/time/rate"
	"google.golang.org/protobuf/proto"

	collectormetrics "go.opentelemetry.io/proto/otlp/collector/metrics/v1"
	commonpb "go.opentelemetry.io/proto/otlp/common/v1"
	metricspb "go.opentelemetry.io/proto/otlp/metrics/v1"
	resourcepb "go.opentelemetry.io/proto/otlp/resource/v1"
)

// ErrRateLimited is returned when Flush is called faster than the export
// rate allows. The caller should retry on the next flush interval.
var ErrRateLimited = fmt.Errorf("metrics export rate limit exceeded")

// Exporter pushes aggregated interaction metrics to an OTLP HTTP/protobuf
// collector endpoint. Each process run is identified by a generated session
// id carried as a resource attribute.
type Exporter struct {
	endpoint string
	service  string
	session  string
	client   *http.Client
	limiter  *rate.Limiter
}

// NewExporter returns an exporter posting to endpoint (the collector base
// URL, without the /v1/metrics suffix).
func NewExporter(endpoint, service string) *Exporter {
	return &Exporter{
		endpoint: endpoint,
		service:  service,
		session:  xid.New().String(),
		client:   &http.Client{Timeout: 5 * time.Second},
		limiter:  rate.NewLimiter(1, 4), // 1 flush/s, burst 4
	}
}

// SessionID returns the generated per-run session id.
func (e *Exporter) SessionID() string { return e.session }

// Flush exports the given summaries. An empty slice is a no-op.
func (e *Exporter) Flush(ctx context.Context, summaries []Summary) error {
	if len(summaries) == 0 {
		return nil
	}
	if !e.limiter.Allow() {
		return ErrRateLimited
	}

	body, err := proto.Marshal(e.buildRequest(summaries, time.Now()))
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint+"/v1/metrics", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build export request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-protobuf")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("export metrics: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("export metrics: collector returned %s", resp.Status)
	}
	return nil
}

func (e *Exporter) buildRequest(summaries []Summary, now time.Time) *collectormetrics.ExportMetricsServiceRequest {
	ts := uint64(now.UnixNano())

	ms := make([]*metricspb.Metric, 0, len(summaries))
	for _, s := range summaries {
		ms = append(ms, &metricspb.Metric{
			Name: s.Name,
			Data: &metricspb.Metric_Sum{
				Sum: &metricspb.Sum{
					AggregationTemporality: metricspb.AggregationTemporality_AGGREGATION_TEMPORALITY_CUMULATIVE,
					IsMonotonic:            true,
					DataPoints: []*metricspb.NumberDataPoint{{
						TimeUnixNano: ts,
						Value:        &metricspb.NumberDataPoint_AsDouble{AsDouble: s.Sum},
						Attributes: []*commonpb.KeyValue{
							{Key: "count", Value: intValue(int64(s.Count))},
						},
					}},
				},
			},
		})
	}

	return &collectormetrics.ExportMetricsServiceRequest{
		ResourceMetrics: []*metricspb.ResourceMetrics{{
			Resource: &resourcepb.Resource{
				Attributes: []*commonpb.KeyValue{
					{Key: "service.name", Value: stringValue(e.service)},
					{Key: "session.id", Value: stringValue(e.session)},
				},
			},
			ScopeMetrics: []*metricspb.ScopeMetrics{{Metrics: ms}},
		}},
	}
}

func stringValue(s string) *commonpb.AnyValue {
	return &commonpb.AnyValue{Value: &commonpb.AnyValue_StringValue{StringValue: s}}
}

func intValue(n int64) *commonpb.AnyValue {
	return &commonpb.AnyValue{Value: &commonpb.AnyValue_IntValue{IntValue: n}}
}
