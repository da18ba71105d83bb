package datadog

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"

	"github.com/artie-labs/ingest/lib/maputil"
	"github.com/artie-labs/ingest/lib/stringutil"
	"github.com/artie-labs/ingest/lib/telemetry/metrics/base"
)

const (
	Tags     = "tags"
	Sampling = "sampling"
	// DefaultSampleRate will make sure we do not sample by measuring 100% of our metrics
	DefaultSampleRate = 1

	Namespace = "namespace"
	// DefaultNamespace is prepended to every metric name
	DefaultNamespace = "ingest."

	DatadogAddr = "addr"
	// DefaultAddr is the default address for where the DD agent would be running on a single host machine
	DefaultAddr = "127.0.0.1:8125"
)

// getSampleRate will first parse the val to get a float
// Then it will check if float is a valid sample rate.
// If it's invalid, it will return the default sample, else the passed in rate
func getSampleRate(val any) float64 {
	floatVal, err := strconv.ParseFloat(fmt.Sprint(val), 64)
	if err != nil {
		return DefaultSampleRate
	}

	if floatVal > 1 || floatVal <= 0 {
		return DefaultSampleRate
	}

	return floatVal
}

// agentAddress returns the address of the Datadog agent, the standard DD_AGENT_HOST and DD_DOGSTATSD_PORT env vars
// take precedence over the config file.
func agentAddress(settings map[string]any) string {
	host := os.Getenv("DD_AGENT_HOST")
	port := os.Getenv("DD_DOGSTATSD_PORT")
	if !stringutil.Empty(host, port) {
		return fmt.Sprintf("%s:%s", host, port)
	}

	return fmt.Sprint(maputil.GetKeyFromMap(settings, DatadogAddr, DefaultAddr))
}

func NewDatadogClient(settings map[string]any) (base.Client, error) {
	address := agentAddress(settings)
	slog.Debug("Sending metrics to Datadog agent", slog.String("address", address))

	datadogClient, err := statsd.New(address,
		statsd.WithNamespace(fmt.Sprint(maputil.GetKeyFromMap(settings, Namespace, DefaultNamespace))),
		statsd.WithTags(getTags(maputil.GetKeyFromMap(settings, Tags, []string{}))),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create statsd client: %w", err)
	}

	return &statsClient{
		client: datadogClient,
		rate:   getSampleRate(maputil.GetKeyFromMap(settings, Sampling, DefaultSampleRate)),
	}, nil
}

type statsClient struct {
	client *statsd.Client
	rate   float64
}

func (s *statsClient) Timing(name string, value time.Duration, tags map[string]string) {
	_ = s.client.Timing(name, value, toDatadogTags(tags), s.rate)
}

func (s *statsClient) Incr(name string, tags map[string]string) {
	_ = s.client.Incr(name, toDatadogTags(tags), s.rate)
}

func (s *statsClient) Count(name string, value int64, tags map[string]string) {
	_ = s.client.Count(name, value, toDatadogTags(tags), s.rate)
}

func (s *statsClient) Flush() error {
	if err := s.client.Flush(); err != nil {
		return fmt.Errorf("failed to flush statsd client: %w", err)
	}
	return nil
}
